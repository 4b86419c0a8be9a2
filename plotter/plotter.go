package plotter

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/plotforge/funcplot/canvas"
	"github.com/plotforge/funcplot/classify"
	"github.com/plotforge/funcplot/geom"
	"github.com/plotforge/funcplot/plot"
)

// Plotter runs the classify → parse → sample pipeline against a host
// canvas and emits vector artifacts.
type Plotter struct {
	canvas       canvas.Canvas
	log          *zap.Logger
	interval     time.Duration
	strokeWeight float64
	classifyOpts []classify.Option
	plotOpts     []plot.Option
}

// New builds a Plotter over the given canvas. Panics on a nil canvas;
// everything else defaults sensibly (no-op logger, 1s refresh interval).
func New(c canvas.Canvas, opts ...Option) *Plotter {
	if c == nil {
		panic("plotter: New(nil canvas)")
	}
	p := &Plotter{
		canvas:       c,
		log:          zap.NewNop(),
		interval:     DefaultInterval,
		strokeWeight: DefaultStrokeWeight,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Plot classifies the current selection, parses and samples it, and
// creates the vector artifact. On any pipeline failure no artifact is
// created and the error is returned; the host process is never affected
// beyond "no output produced".
func (p *Plotter) Plot() (*Artifact, error) {
	roles, err := classify.Classify(p.canvas.Selection(), p.classifyOpts...)
	if err != nil {
		return nil, err
	}

	in, err := plot.Parse(roles, p.plotOpts...)
	if err != nil {
		return nil, err
	}
	net, err := plot.Sample(in, p.plotOpts...)
	if err != nil {
		return nil, err
	}

	params := p.vectorParams(in, net)
	id, err := p.canvas.CreateVector(params)
	if err != nil {
		return nil, fmt.Errorf("plotter: create artifact: %w", err)
	}
	p.log.Info("artifact created",
		zap.String("id", id),
		zap.String("function", in.Function.Source()))

	return &Artifact{p: p, id: id, roles: roles, last: in}, nil
}

// vectorParams assembles the artifact request: positioned at the target
// rectangle's origin, named after the formula's literal source.
func (p *Plotter) vectorParams(in plot.Inputs, net geom.VectorNetwork) canvas.VectorParams {
	return canvas.VectorParams{
		X:            in.Rect.X,
		Y:            in.Rect.Y,
		Name:         fmt.Sprintf("f(x) = %s", in.Function.Source()),
		Network:      net,
		StrokeWeight: p.strokeWeight,
	}
}
