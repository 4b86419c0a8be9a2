package classify

import (
	"math"

	"github.com/plotforge/funcplot/canvas"
	"github.com/plotforge/funcplot/geom"
)

// Classify assigns semantic roles to the elements of a selection.
//
// Algorithm:
//  1. Reduce all element boxes to the selection bounds bb. Zero bb width
//     or height makes normalization undefined → ErrDegenerateSelection.
//  2. For every anchor, scan every element: normalize the element's center
//     into bb's unit coordinates and measure the Euclidean distance to the
//     anchor. The element qualifies when its type matches and the distance
//     is strictly below the threshold.
//  3. Among qualifying elements the nearest wins; at equal distance the
//     earlier element (input order) keeps the role. An element may hold
//     several roles if it qualifies for each.
//  4. Roles with no qualifying element stay absent. A result without
//     RoleFunction is reported as ErrNoMatch.
//
// Classification is idempotent: reclassifying the matched elements with
// unchanged positions yields the same role map, provided their union still
// spans the same bounds.
//
// Complexity: O(anchors × elements).
func Classify(nodes []canvas.Node, opts ...Option) (Roles, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	boxes := make([]geom.BoundingBox, len(nodes))
	for i, n := range nodes {
		boxes[i] = n.Box
	}
	bb := geom.BoundsOf(boxes...)
	if bb.IsEmpty() || bb.Width == 0 || bb.Height == 0 {
		return nil, ErrDegenerateSelection
	}

	roles := make(Roles, len(cfg.anchors))
	for _, anchor := range cfg.anchors {
		best := -1
		bestDist := math.Inf(1)
		for i, n := range nodes {
			if n.Type != anchor.Type {
				continue
			}
			c := n.Center()
			nx := (c.X - bb.X) / bb.Width
			ny := (c.Y - bb.Y) / bb.Height
			d := math.Hypot(nx-anchor.At.X, ny-anchor.At.Y)
			if d >= cfg.threshold {
				continue
			}
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		if best >= 0 {
			roles[anchor.Role] = nodes[best]
		}
	}

	if _, ok := roles[RoleFunction]; !ok {
		return nil, ErrNoMatch
	}

	return roles, nil
}
