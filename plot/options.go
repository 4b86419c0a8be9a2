package plot

// Option customizes parsing and sampling. Constructors validate and panic
// on meaningless input; Parse and Sample never panic.
type Option func(*config)

type config struct {
	inset          float64
	samplesPerUnit float64
	compatStep     bool
}

func defaultConfig() config {
	return config{
		inset:          DefaultInset,
		samplesPerUnit: DefaultSamplesPerUnit,
	}
}

// WithInset sets the fraction by which a synthesized target rectangle is
// shrunk when no placeholder exists. Panics unless 0 <= inset < 1.
func WithInset(inset float64) Option {
	if inset < 0 || inset >= 1 {
		panic("plot: WithInset outside [0,1)")
	}
	return func(c *config) {
		c.inset = inset
	}
}

// WithSamplesPerUnit sets the sampling density in samples per pixel-unit of
// rectangle width. The default 0.5 places one vertex every 2 units. Panics
// if d <= 0.
func WithSamplesPerUnit(d float64) Option {
	if d <= 0 {
		panic("plot: WithSamplesPerUnit(d<=0)")
	}
	return func(c *config) {
		c.samplesPerUnit = d
	}
}

// WithCompatDomainStep reproduces the domain stepping of the system this
// package reimplements: each sample advances by 1/(maxDomain-minDomain)
// instead of (maxDomain-minDomain)/(n-1). The sampled span then only equals
// [minDomain, maxDomain] when that span is 1. Known upstream defect, kept
// selectable for bit-for-bit output parity.
func WithCompatDomainStep() Option {
	return func(c *config) {
		c.compatStep = true
	}
}
