package plot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotforge/funcplot/canvas"
	"github.com/plotforge/funcplot/classify"
	"github.com/plotforge/funcplot/geom"
	"github.com/plotforge/funcplot/mathexpr"
	"github.com/plotforge/funcplot/plot"
)

func text(chars string, box geom.BoundingBox) canvas.Node {
	return canvas.Node{Type: canvas.TextNode, Characters: chars, Box: box}
}

// TestParse_PlaceholderRect verifies the placeholder box is used verbatim.
func TestParse_PlaceholderRect(t *testing.T) {
	rect := geom.BoundingBox{X: 10, Y: 20, Width: 300, Height: 150}
	roles := classify.Roles{
		classify.RoleFunction:    text("x^2", geom.BoundingBox{X: 150, Y: 10}),
		classify.RolePlaceholder: {Type: canvas.RectangleNode, Box: rect},
	}

	in, err := plot.Parse(roles)
	require.NoError(t, err)
	assert.Equal(t, rect, in.Rect)
	assert.Equal(t, "x^2", in.Function.Source())
}

// TestParse_SynthesizedRect verifies the inset fallback: same origin as the
// classified elements' bounds, extent scaled by 1-inset.
func TestParse_SynthesizedRect(t *testing.T) {
	roles := classify.Roles{
		classify.RoleFunction:  text("x", geom.BoundingBox{X: 0, Y: 0, Width: 40, Height: 10}),
		classify.RoleMaxDomain: text("1", geom.BoundingBox{X: 160, Y: 90, Width: 40, Height: 10}),
	}

	in, err := plot.Parse(roles)
	require.NoError(t, err)
	// Bounds of the two labels: (0,0) 200x100, inset 0.1.
	assert.Equal(t, geom.BoundingBox{X: 0, Y: 0, Width: 180, Height: 90}, in.Rect)
}

// TestParse_Bounds verifies present labels evaluate and absent roles stay
// unset rather than zero.
func TestParse_Bounds(t *testing.T) {
	roles := classify.Roles{
		classify.RoleFunction:  text("x", geom.BoundingBox{Width: 10, Height: 10}),
		classify.RoleMinDomain: text("-pi", geom.BoundingBox{X: 100}),
		classify.RoleMaxRange:  text("2", geom.BoundingBox{Y: 100}),
	}

	in, err := plot.Parse(roles)
	require.NoError(t, err)
	require.True(t, in.MinDomain.OK)
	assert.InDelta(t, -3.14159265358979, in.MinDomain.Value, 1e-12)
	require.True(t, in.MaxRange.OK)
	assert.Equal(t, 2.0, in.MaxRange.Value)
	assert.False(t, in.MaxDomain.OK, "absent role must stay unset")
	assert.False(t, in.MinRange.OK)
}

// TestParse_MalformedBoundDegrades verifies the documented policy: a label
// that fails to evaluate is treated as unset, not as a parse failure.
func TestParse_MalformedBoundDegrades(t *testing.T) {
	roles := classify.Roles{
		classify.RoleFunction:  text("x", geom.BoundingBox{Width: 10, Height: 10}),
		classify.RoleMinDomain: text("not a number", geom.BoundingBox{X: 100}),
	}

	in, err := plot.Parse(roles)
	require.NoError(t, err)
	assert.False(t, in.MinDomain.OK, "malformed bound degrades to unset")
}

// TestParse_MalformedFunctionFatal verifies a formula that fails to compile
// aborts the whole parse.
func TestParse_MalformedFunctionFatal(t *testing.T) {
	roles := classify.Roles{
		classify.RoleFunction: text("(x", geom.BoundingBox{Width: 10, Height: 10}),
	}

	_, err := plot.Parse(roles)
	assert.ErrorIs(t, err, plot.ErrNoFunction)
	assert.ErrorIs(t, err, mathexpr.ErrParse)
}

// TestParse_MissingFunctionRole verifies an empty role map fails cleanly.
func TestParse_MissingFunctionRole(t *testing.T) {
	_, err := plot.Parse(classify.Roles{})
	assert.ErrorIs(t, err, plot.ErrNoFunction)
}
