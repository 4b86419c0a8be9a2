package plot

import (
	"math"

	"github.com/plotforge/funcplot/geom"
)

// DefaultSamplesPerUnit is the sampling density: one vertex every 2
// pixel-units of rectangle width.
const DefaultSamplesPerUnit = 0.5

// Domain defaults applied when the corresponding bound is unset.
const (
	DefaultMinDomain = 0.0
	DefaultMaxDomain = 1.0
)

// minSamples is the smallest curve worth emitting; 2 points are a line
// segment, not a graph.
const minSamples = 3

// Sample evaluates the parsed formula over a sample grid and produces the
// output polyline.
//
// Algorithm:
//  1. n = ceil(rect.Width*density + 1). n < 3 → ErrInsufficientResolution.
//  2. Domain bounds default to [0, 1]; sample i maps onto the domain
//     linearly (or by the original's constant step under
//     WithCompatDomainStep, see doc.go).
//  3. The formula is evaluated at every sample; any failure aborts.
//  4. Unset range bounds are auto-ranged from the sampled min/max, so
//     auto-range always reflects the current function shape.
//  5. Equal range bounds → ErrDegenerateRange.
//  6. Vertex i is (i/density, rect.Height*(value-minRange)/(maxRange-minRange));
//     screen x depends only on the index, never on the domain mapping.
//
// Complexity: O(n) evaluations, O(n) memory.
func Sample(in Inputs, opts ...Option) (geom.VectorNetwork, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := int(math.Ceil(in.Rect.Width*cfg.samplesPerUnit + 1))
	if n < minSamples {
		return geom.VectorNetwork{}, ErrInsufficientResolution
	}

	minDomain := in.MinDomain.Or(DefaultMinDomain)
	maxDomain := in.MaxDomain.Or(DefaultMaxDomain)

	values := make([]float64, n)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		x := domainSample(minDomain, maxDomain, i, n, cfg.compatStep)
		v, err := in.Function.Eval(x)
		if err != nil {
			return geom.VectorNetwork{}, err
		}
		values[i] = v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	minRange := in.MinRange.Or(lo)
	maxRange := in.MaxRange.Or(hi)
	if maxRange == minRange {
		return geom.VectorNetwork{}, ErrDegenerateRange
	}

	vertices := make([]geom.Vertex, n)
	for i, v := range values {
		vertices[i] = geom.Vertex{
			X: float64(i) / cfg.samplesPerUnit,
			Y: in.Rect.Height * (v - minRange) / (maxRange - minRange),
		}
	}

	return geom.Polyline(vertices), nil
}

// domainSample maps sample index i to a domain coordinate. The compat path
// keeps the original's constant step of 1/(maxDomain-minDomain) per index.
func domainSample(minDomain, maxDomain float64, i, n int, compat bool) float64 {
	if compat {
		return minDomain + float64(i)/(maxDomain-minDomain)
	}

	return minDomain + float64(i)*(maxDomain-minDomain)/float64(n-1)
}
