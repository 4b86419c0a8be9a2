package plotter

import (
	"time"

	"go.uber.org/zap"

	"github.com/plotforge/funcplot/classify"
	"github.com/plotforge/funcplot/plot"
)

// DefaultInterval is the refresh period of Artifact.Watch.
const DefaultInterval = time.Second

// DefaultStrokeWeight is the stroke weight applied to emitted artifacts.
const DefaultStrokeWeight = 1.0

// Option customizes a Plotter. Constructors validate and panic on
// meaningless input; the pipeline itself never panics.
type Option func(*Plotter)

// WithLogger injects the structured logger. Panics on nil: silence is
// expressed with zap.NewNop(), never a nil logger.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("plotter: WithLogger(nil)")
	}
	return func(p *Plotter) {
		p.log = log
	}
}

// WithInterval sets the refresh period. Panics if d <= 0.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic("plotter: WithInterval(d<=0)")
	}
	return func(p *Plotter) {
		p.interval = d
	}
}

// WithStrokeWeight sets the emitted artifact's stroke weight. Panics if
// w <= 0.
func WithStrokeWeight(w float64) Option {
	if w <= 0 {
		panic("plotter: WithStrokeWeight(w<=0)")
	}
	return func(p *Plotter) {
		p.strokeWeight = w
	}
}

// WithClassifyOptions forwards options to the role classifier.
func WithClassifyOptions(opts ...classify.Option) Option {
	return func(p *Plotter) {
		p.classifyOpts = append(p.classifyOpts, opts...)
	}
}

// WithPlotOptions forwards options to Parse and Sample.
func WithPlotOptions(opts ...plot.Option) Option {
	return func(p *Plotter) {
		p.plotOpts = append(p.plotOpts, opts...)
	}
}
