// Package geom defines core value types and the empty-box identity for the
// geom subpackage of github.com/plotforge/funcplot.
package geom

import "math"

// Point is a position in host canvas coordinates.
type Point struct {
	X, Y float64
}

// BoundingBox is an axis-aligned box in host canvas coordinates.
// Width and Height are non-negative for well-formed boxes; the sentinel
// returned by Empty() (X=Y=+Inf, Width=Height=-Inf) marks the "no box yet"
// identity and is the only box with negative extent.
type BoundingBox struct {
	X, Y          float64
	Width, Height float64
}

// Empty returns the identity element for Union. It contains nothing:
// unioning it with any box returns that box unchanged.
func Empty() BoundingBox {
	return BoundingBox{
		X:      math.Inf(1),
		Y:      math.Inf(1),
		Width:  math.Inf(-1),
		Height: math.Inf(-1),
	}
}

// IsEmpty reports whether b is the empty sentinel. A box whose origin sits
// at +Inf or whose extent is negative contains nothing by construction.
func (b BoundingBox) IsEmpty() bool {
	return math.IsInf(b.X, 1) || math.IsInf(b.Y, 1) || b.Width < 0 || b.Height < 0
}

// Center returns the midpoint of b: (x + width/2, y + height/2).
func (b BoundingBox) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Vertex is one polyline point, relative to the artifact origin.
type Vertex struct {
	X, Y float64
}

// Segment links two vertices of a VectorNetwork by index.
type Segment struct {
	Start, End int
}

// VectorNetwork is the polyline output representation: an ordered vertex
// sequence plus the segments connecting them. Open chains produced by
// Polyline carry exactly len(Vertices)-1 segments and no closing segment.
type VectorNetwork struct {
	Vertices []Vertex
	Segments []Segment
}
