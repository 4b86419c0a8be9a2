package geom_test

import (
	"fmt"

	"github.com/plotforge/funcplot/geom"
)

// ExampleBoundsOf demonstrates reducing a selection's element boxes to the
// overall selection bounds and locating its center.
func ExampleBoundsOf() {
	label := geom.BoundingBox{X: 40, Y: -10, Width: 20, Height: 10}
	frame := geom.BoundingBox{X: 0, Y: 0, Width: 100, Height: 60}

	bb := geom.BoundsOf(label, frame)
	c := bb.Center()
	fmt.Printf("bounds=(%.0f,%.0f %5.0fx%.0f) center=(%.0f,%.0f)\n",
		bb.X, bb.Y, bb.Width, bb.Height, c.X, c.Y)
	// Output:
	// bounds=(0,-10   100x70) center=(50,25)
}

// ExamplePolyline builds the open chain handed to the host artifact sink.
func ExamplePolyline() {
	net := geom.Polyline([]geom.Vertex{{X: 0, Y: 0}, {X: 2, Y: 4}, {X: 4, Y: 16}})
	fmt.Println(len(net.Vertices), "vertices,", len(net.Segments), "segments")
	fmt.Println(net.Segments)
	// Output:
	// 3 vertices, 2 segments
	// [{0 1} {1 2}]
}
