// Package canvas defines the host element model and collaborator
// interfaces for the canvas subpackage of github.com/plotforge/funcplot.
package canvas

import "github.com/plotforge/funcplot/geom"

// NodeType tags a host element with its kind. The set is closed: hosts may
// expose more kinds, but the pipeline only ever distinguishes these.
type NodeType string

const (
	// TextNode is a text element; Characters holds its content.
	TextNode NodeType = "TEXT"
	// RectangleNode is a plain rectangle element.
	RectangleNode NodeType = "RECTANGLE"
	// VectorNode is a vector-path element, the artifact kind funcplot emits.
	VectorNode NodeType = "VECTOR"
	// FrameNode is a container element.
	FrameNode NodeType = "FRAME"
)

// Node is a read-only view of one positioned host element. The host owns
// the element; funcplot reads geometry and, for TextNode, Characters.
type Node struct {
	ID         string
	Type       NodeType
	Box        geom.BoundingBox
	Characters string
}

// Center returns the midpoint of the node's bounding box.
func (n Node) Center() geom.Point { return n.Box.Center() }

// VectorParams is a request to create or update a vector-path artifact.
// Name should embed the plotted function's literal source text so the
// artifact stays traceable to its formula.
type VectorParams struct {
	X, Y         float64
	Name         string
	Network      geom.VectorNetwork
	StrokeWeight float64
}

// Selector is the input collaborator: it supplies the host's current
// selection. Order is irrelevant; funcplot never mutates the elements.
type Selector interface {
	Selection() []Node
}

// Artifacts is the output collaborator: it creates and mutates vector-path
// artifacts. Implementations must apply params atomically: a failed call
// leaves no partial artifact behind.
type Artifacts interface {
	// CreateVector creates a new vector artifact and returns its id.
	CreateVector(p VectorParams) (string, error)
	// UpdateVector replaces position and geometry of an existing artifact
	// in place. Unknown ids return ErrNoSuchNode.
	UpdateVector(id string, p VectorParams) error
}

// Canvas is what a full host bridge implements: selection in, artifacts out.
type Canvas interface {
	Selector
	Artifacts
}
