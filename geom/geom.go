package geom

import "math"

// Union returns the minimal box containing both a and b.
//
// The empty sentinel is the identity element: Union(a, Empty()) == a and
// Union(Empty(), b) == b. For well-formed boxes Union is commutative and
// associative, so BoundsOf may reduce in any order.
//
// Complexity: O(1).
func Union(a, b BoundingBox) BoundingBox {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxX := math.Max(a.X+a.Width, b.X+b.Width)
	maxY := math.Max(a.Y+a.Height, b.Y+b.Height)

	return BoundingBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// BoundsOf reduces boxes via Union, seeded with the empty identity.
// A single box is returned directly; no arguments yield Empty().
//
// Complexity: O(n) over the arguments.
func BoundsOf(boxes ...BoundingBox) BoundingBox {
	acc := Empty()
	for _, b := range boxes {
		acc = Union(acc, b)
	}

	return acc
}

// Polyline builds an open vertex chain: n vertices, n-1 segments linking
// consecutive indices, no closing segment. Zero or one vertex yields a
// network with no segments.
//
// Complexity: O(n) over the vertices.
func Polyline(vertices []Vertex) VectorNetwork {
	net := VectorNetwork{Vertices: vertices}
	if len(vertices) < 2 {
		return net
	}
	net.Segments = make([]Segment, len(vertices)-1)
	for i := range net.Segments {
		net.Segments[i] = Segment{Start: i, End: i + 1}
	}

	return net
}
