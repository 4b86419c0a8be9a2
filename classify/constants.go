package classify

import (
	"github.com/plotforge/funcplot/canvas"
	"github.com/plotforge/funcplot/geom"
)

// DefaultThreshold is the maximum normalized distance (exclusive) between
// an element's center and an anchor for the element to qualify. 0.1 means
// "within a tenth of the selection's extent".
const DefaultThreshold = 0.1

// defaultAnchors is the fixed classification table. Never mutated;
// DefaultAnchors returns copies.
var defaultAnchors = []Anchor{
	{Role: RoleFunction, Type: canvas.TextNode, At: geom.Point{X: 0.5, Y: 0}},
	{Role: RolePlaceholder, Type: canvas.RectangleNode, At: geom.Point{X: 0.5, Y: 0.5}},
	{Role: RoleMinDomain, Type: canvas.TextNode, At: geom.Point{X: 0.1, Y: 1}},
	{Role: RoleMaxDomain, Type: canvas.TextNode, At: geom.Point{X: 0.9, Y: 1}},
	{Role: RoleMinRange, Type: canvas.TextNode, At: geom.Point{X: 0, Y: 0.9}},
	{Role: RoleMaxRange, Type: canvas.TextNode, At: geom.Point{X: 0, Y: 0.1}},
}

// DefaultAnchors returns a copy of the fixed anchor table: formula label
// top-center, placeholder rectangle centered, domain labels along the
// bottom edge, range labels along the left edge.
func DefaultAnchors() []Anchor {
	return append([]Anchor(nil), defaultAnchors...)
}
