// Package classify defines roles, anchors and the classified-role map for
// the classify subpackage of github.com/plotforge/funcplot.
package classify

import (
	"github.com/plotforge/funcplot/canvas"
	"github.com/plotforge/funcplot/geom"
)

// Role is a semantic label assigned to one selected element.
type Role string

const (
	// RoleFunction is the formula label. Mandatory: classification fails
	// without it.
	RoleFunction Role = "function"
	// RolePlaceholder is the rectangle whose box becomes the target rect.
	RolePlaceholder Role = "placeholder"
	// RoleMinDomain is the lower domain-bound label.
	RoleMinDomain Role = "minDomain"
	// RoleMaxDomain is the upper domain-bound label.
	RoleMaxDomain Role = "maxDomain"
	// RoleMinRange is the lower range-bound label.
	RoleMinRange Role = "minRange"
	// RoleMaxRange is the upper range-bound label.
	RoleMaxRange Role = "maxRange"
)

// Anchor is one entry of the classification table: the expected element
// type and normalized center position for a role.
type Anchor struct {
	Role Role
	Type canvas.NodeType
	At   geom.Point
}

// Roles maps each matched role to its element. Constructed once per
// classification; treated as immutable afterwards. Roles other than
// RoleFunction may be absent, meaning "use defaults".
type Roles map[Role]canvas.Node

// Node returns the element classified into role, if any.
func (r Roles) Node(role Role) (canvas.Node, bool) {
	n, ok := r[role]

	return n, ok
}

// Nodes returns the classified elements in a fixed role order (function,
// placeholder, bounds), for deterministic downstream reduction.
func (r Roles) Nodes() []canvas.Node {
	out := make([]canvas.Node, 0, len(r))
	for _, role := range []Role{
		RoleFunction, RolePlaceholder,
		RoleMinDomain, RoleMaxDomain, RoleMinRange, RoleMaxRange,
	} {
		if n, ok := r[role]; ok {
			out = append(out, n)
		}
	}

	return out
}
