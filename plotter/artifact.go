package plotter

import (
	"context"
	"sync"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/plotforge/funcplot/canvas"
	"github.com/plotforge/funcplot/classify"
	"github.com/plotforge/funcplot/mathexpr"
	"github.com/plotforge/funcplot/plot"
)

// Artifact is one emitted vector path together with the classified roles
// it was derived from. Refreshes re-derive inputs from the live selection
// (the role → element assignment is fixed; text and geometry are re-read)
// and rewrite the artifact only on material change.
type Artifact struct {
	p     *Plotter
	id    string
	roles classify.Roles

	mu   sync.Mutex // serializes refreshes; at most one in flight
	last plot.Inputs
}

// ID returns the host id of the artifact node.
func (a *Artifact) ID() string { return a.id }

// Watch refreshes the artifact on the plotter's interval until ctx is
// cancelled. The timer is released on every exit path. A tick that fails to
// parse or sample is skipped silently (debug-logged); the loop never stops
// on its own.
func (a *Artifact) Watch(ctx context.Context) error {
	ticker := time.NewTicker(a.p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			a.Refresh()
		}
	}
}

// Refresh runs one refresh tick by hand: re-parse, re-sample, rewrite on
// change. Reports whether the artifact was rewritten. Hosts with their own
// cadence may call this instead of Watch.
func (a *Artifact) Refresh() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	in, err := plot.Parse(a.currentRoles(), a.p.plotOpts...)
	if err != nil {
		a.p.log.Debug("refresh skipped: parse", zap.String("id", a.id), zap.Error(err))

		return false
	}
	if inputsEqual(in, a.last) {
		return false
	}

	net, err := plot.Sample(in, a.p.plotOpts...)
	if err != nil {
		a.p.log.Debug("refresh skipped: sample", zap.String("id", a.id), zap.Error(err))

		return false
	}

	if err := a.p.canvas.UpdateVector(a.id, a.p.vectorParams(in, net)); err != nil {
		a.p.log.Warn("refresh skipped: update", zap.String("id", a.id), zap.Error(err))

		return false
	}
	a.last = in
	a.p.log.Info("artifact updated",
		zap.String("id", a.id),
		zap.String("function", in.Function.Source()))

	return true
}

// currentRoles re-reads each classified element from the live selection by
// id, picking up text and geometry edits. Elements that left the selection
// drop out; if the function label is gone, the next Parse fails and the
// tick is skipped.
func (a *Artifact) currentRoles() classify.Roles {
	byID := make(map[string]canvas.Node)
	for _, n := range a.p.canvas.Selection() {
		byID[n.ID] = n
	}

	out := make(classify.Roles, len(a.roles))
	for role, n := range a.roles {
		if cur, ok := byID[n.ID]; ok {
			out[role] = cur
		}
	}

	return out
}

// exprBySource compares compiled expressions by their literal source: two
// formulas are the same input iff the user typed the same text.
var exprBySource = cmp.Comparer(func(a, b *mathexpr.Expr) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Source() == b.Source()
})

// inputsEqual is the full structural equality that gates artifact rewrites.
func inputsEqual(a, b plot.Inputs) bool {
	return cmp.Equal(a, b, exprBySource)
}
