package plot

import (
	"fmt"

	"github.com/plotforge/funcplot/classify"
	"github.com/plotforge/funcplot/geom"
	"github.com/plotforge/funcplot/mathexpr"
)

// DefaultInset is the shrink factor applied when the target rectangle is
// synthesized from the classified elements' bounds (no placeholder).
const DefaultInset = 0.1

// Parse derives typed plotting inputs from a classified role map.
//
// The function label must compile; that failure is fatal (ErrNoFunction).
// Each present bound label is evaluated with the same grammar and constants
// as the formula; a label that fails to evaluate degrades to an unset
// bound, which downstream treats as "use defaults" (domain) or auto-range
// (range). The target rectangle is the placeholder's box verbatim when that
// role matched, otherwise the bounds of all classified elements with width
// and height scaled by 1-inset (same origin).
func Parse(roles classify.Roles, opts ...Option) (Inputs, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fnNode, ok := roles.Node(classify.RoleFunction)
	if !ok {
		return Inputs{}, ErrNoFunction
	}
	fn, err := mathexpr.Compile(fnNode.Characters)
	if err != nil {
		return Inputs{}, fmt.Errorf("%w: %w", ErrNoFunction, err)
	}

	in := Inputs{
		Function:  fn,
		MinDomain: boundLabel(roles, classify.RoleMinDomain),
		MaxDomain: boundLabel(roles, classify.RoleMaxDomain),
		MinRange:  boundLabel(roles, classify.RoleMinRange),
		MaxRange:  boundLabel(roles, classify.RoleMaxRange),
	}

	if ph, ok := roles.Node(classify.RolePlaceholder); ok {
		in.Rect = ph.Box
	} else {
		nodes := roles.Nodes()
		boxes := make([]geom.BoundingBox, len(nodes))
		for i, n := range nodes {
			boxes[i] = n.Box
		}
		bb := geom.BoundsOf(boxes...)
		in.Rect = geom.BoundingBox{
			X:      bb.X,
			Y:      bb.Y,
			Width:  bb.Width * (1 - cfg.inset),
			Height: bb.Height * (1 - cfg.inset),
		}
	}

	return in, nil
}

// boundLabel evaluates one optional bound label. Absent role or failed
// evaluation both yield an unset bound.
func boundLabel(roles classify.Roles, role classify.Role) Bound {
	n, ok := roles.Node(role)
	if !ok {
		return Unset()
	}
	v, err := mathexpr.EvalNumber(n.Characters)
	if err != nil {
		return Unset()
	}

	return Set(v)
}
