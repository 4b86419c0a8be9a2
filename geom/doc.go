// Package geom provides the axis-aligned geometry primitives shared by the
// funcplot pipeline: bounding boxes with an empty-box identity, box union
// and reduction, center computation, and the VectorNetwork polyline output
// model.
//
// What:
//
//   - BoundingBox is an axis-aligned box in host canvas coordinates.
//   - Empty() is the identity element for Union: unioning any box with it
//     returns that box unchanged.
//   - BoundsOf reduces any number of boxes to their minimal covering box.
//   - VectorNetwork is an index-linked polyline (vertices + open segment
//     chain), the shape handed to the host's artifact creator.
//
// Why:
//
//   - Selection analysis: the overall bounds of a selection define the local
//     coordinate frame used for role classification.
//   - Output geometry: sampled curves are emitted as open polylines.
//
// Laws (verified by property tests):
//
//   - Union(a, b) == Union(b, a) for well-formed boxes.
//   - Union(a, Empty()) == a and Union(Empty(), a) == a.
//   - Union(a, a) == a; Union covers both operands.
//
// Union is also associative up to floating-point rounding of the derived
// width/height, so BoundsOf may reduce in any order.
//
// Complexity: all operations are O(1) per box; BoundsOf is O(n) over its
// arguments; Polyline is O(n) over its vertices.
package geom
