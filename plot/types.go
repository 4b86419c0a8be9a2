// Package plot defines the typed input record produced by Parse and
// consumed by Sample.
package plot

import (
	"github.com/plotforge/funcplot/geom"
	"github.com/plotforge/funcplot/mathexpr"
)

// Bound is an optional numeric bound: absent is distinct from zero.
type Bound struct {
	Value float64
	OK    bool
}

// Set returns a present bound.
func Set(v float64) Bound { return Bound{Value: v, OK: true} }

// Unset returns an absent bound.
func Unset() Bound { return Bound{} }

// Or returns the bound's value, or def when the bound is absent.
func (b Bound) Or(def float64) float64 {
	if b.OK {
		return b.Value
	}

	return def
}

// Inputs is the typed form of a classified selection: the compiled formula,
// the target rectangle, and the four optional axis bounds. Derived from the
// role map each time label text may have changed.
type Inputs struct {
	Function *mathexpr.Expr
	Rect     geom.BoundingBox

	MinDomain, MaxDomain Bound
	MinRange, MaxRange   Bound
}
