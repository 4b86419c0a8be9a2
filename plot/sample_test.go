package plot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotforge/funcplot/geom"
	"github.com/plotforge/funcplot/mathexpr"
	"github.com/plotforge/funcplot/plot"
)

func compile(t *testing.T, src string) *mathexpr.Expr {
	t.Helper()
	e, err := mathexpr.Compile(src)
	require.NoError(t, err)

	return e
}

// TestSample_VertexGrid verifies the screen-space x grid for a width-100
// rectangle: 51 vertices at 0, 2, 4, …, 100, connected by 50 segments.
func TestSample_VertexGrid(t *testing.T) {
	in := plot.Inputs{
		Function: compile(t, "x^2"),
		Rect:     geom.BoundingBox{Width: 100, Height: 50},
	}

	net, err := plot.Sample(in)
	require.NoError(t, err)
	require.Len(t, net.Vertices, 51)
	require.Len(t, net.Segments, 50)
	for i, v := range net.Vertices {
		assert.Equal(t, float64(2*i), v.X, "vertex %d", i)
	}
	assert.Equal(t, geom.Segment{Start: 0, End: 1}, net.Segments[0])
	assert.Equal(t, geom.Segment{Start: 49, End: 50}, net.Segments[49])
}

// TestSample_InsufficientResolution verifies rectangles too narrow for 3
// samples are rejected.
func TestSample_InsufficientResolution(t *testing.T) {
	in := plot.Inputs{
		Function: compile(t, "x"),
		Rect:     geom.BoundingBox{Width: 2, Height: 50}, // ceil(2*0.5+1) = 2
	}

	_, err := plot.Sample(in)
	assert.ErrorIs(t, err, plot.ErrInsufficientResolution)

	// Width 3 yields ceil(2.5) = 3 samples: the minimum accepted.
	in.Rect.Width = 3
	_, err = plot.Sample(in)
	assert.NoError(t, err)
}

// TestSample_AutoRange verifies auto-ranged extrema land exactly on 0 and
// rect.Height: identity function over the default [0,1] domain, 23 samples
// (width 44).
func TestSample_AutoRange(t *testing.T) {
	in := plot.Inputs{
		Function: compile(t, "x"),
		Rect:     geom.BoundingBox{Width: 44, Height: 200},
	}

	net, err := plot.Sample(in)
	require.NoError(t, err)
	require.Len(t, net.Vertices, 23)

	minY, maxY := net.Vertices[0].Y, net.Vertices[0].Y
	for _, v := range net.Vertices {
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	assert.Equal(t, 0.0, minY, "auto-range minimum maps to 0")
	assert.Equal(t, 200.0, maxY, "auto-range maximum maps to rect.Height")
}

// TestSample_ExplicitRange verifies explicit bounds override auto-ranging
// and scale values linearly.
func TestSample_ExplicitRange(t *testing.T) {
	in := plot.Inputs{
		Function: compile(t, "x"),
		Rect:     geom.BoundingBox{Width: 44, Height: 100},
		MinRange: plot.Set(0),
		MaxRange: plot.Set(2),
	}

	net, err := plot.Sample(in)
	require.NoError(t, err)
	// Values span [0,1] but the explicit range is [0,2]: the curve tops out
	// at half the rectangle height.
	assert.InDelta(t, 50.0, net.Vertices[len(net.Vertices)-1].Y, 1e-9)
}

// TestSample_DegenerateRange verifies equal bounds fail deterministically
// instead of dividing by zero.
func TestSample_DegenerateRange(t *testing.T) {
	in := plot.Inputs{
		Function: compile(t, "x"),
		Rect:     geom.BoundingBox{Width: 100, Height: 50},
		MinRange: plot.Set(0),
		MaxRange: plot.Set(0),
	}
	_, err := plot.Sample(in)
	assert.ErrorIs(t, err, plot.ErrDegenerateRange)

	// A constant function auto-ranges to an empty span: same guard.
	in = plot.Inputs{
		Function: compile(t, "1"),
		Rect:     geom.BoundingBox{Width: 100, Height: 50},
	}
	_, err = plot.Sample(in)
	assert.ErrorIs(t, err, plot.ErrDegenerateRange)
}

// TestSample_EvalFailure verifies a formula that fails at a sample point
// aborts the sampling with the eval sentinel.
func TestSample_EvalFailure(t *testing.T) {
	in := plot.Inputs{
		Function: compile(t, "x + y"), // y is unbound
		Rect:     geom.BoundingBox{Width: 100, Height: 50},
	}

	_, err := plot.Sample(in)
	assert.ErrorIs(t, err, mathexpr.ErrEval)
}

// TestSample_CompatDomainStep verifies the preserved stepping of the
// original: 1/(maxDomain-minDomain) per index, regardless of sample count.
func TestSample_CompatDomainStep(t *testing.T) {
	in := plot.Inputs{
		Function:  compile(t, "x"),
		Rect:      geom.BoundingBox{Width: 4, Height: 2}, // n = 3
		MaxDomain: plot.Set(2),
		MinRange:  plot.Set(0),
		MaxRange:  plot.Set(2),
	}

	// Default mapping covers [0,2] exactly: samples 0, 1, 2.
	net, err := plot.Sample(in)
	require.NoError(t, err)
	require.Len(t, net.Vertices, 3)
	assert.InDelta(t, 2.0, net.Vertices[2].Y, 1e-12)

	// Compat mapping steps by 1/(2-0) = 0.5: samples 0, 0.5, 1.
	net, err = plot.Sample(in, plot.WithCompatDomainStep())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, net.Vertices[2].Y, 1e-12)
}

// TestSample_DomainDefaults verifies unset domain bounds default to [0,1].
func TestSample_DomainDefaults(t *testing.T) {
	in := plot.Inputs{
		Function: compile(t, "x*10"),
		Rect:     geom.BoundingBox{Width: 44, Height: 100},
		MinRange: plot.Set(0),
		MaxRange: plot.Set(10),
	}

	net, err := plot.Sample(in)
	require.NoError(t, err)
	// Last sample is x=1 → value 10 → full height.
	assert.InDelta(t, 100.0, net.Vertices[len(net.Vertices)-1].Y, 1e-9)
	// First sample is x=0 → value 0 → baseline.
	assert.InDelta(t, 0.0, net.Vertices[0].Y, 1e-9)
}

// TestSampleOptions_Validate verifies option constructors reject
// meaningless input by panicking.
func TestSampleOptions_Validate(t *testing.T) {
	assert.Panics(t, func() { plot.WithSamplesPerUnit(0) })
	assert.Panics(t, func() { plot.WithInset(1) })
	assert.Panics(t, func() { plot.WithInset(-0.1) })
}
