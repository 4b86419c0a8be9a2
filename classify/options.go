package classify

// Option customizes classification. Option constructors validate and panic
// on meaningless input; Classify itself never panics.
type Option func(*config)

type config struct {
	threshold float64
	anchors   []Anchor
}

func defaultConfig() config {
	return config{threshold: DefaultThreshold, anchors: defaultAnchors}
}

// WithThreshold sets the normalized matching distance (exclusive bound).
// Panics if t <= 0: a non-positive threshold can never match anything.
func WithThreshold(t float64) Option {
	if t <= 0 {
		panic("classify: WithThreshold(t<=0)")
	}
	return func(c *config) {
		c.threshold = t
	}
}

// WithAnchors replaces the anchor table. Panics on an empty table or one
// without a RoleFunction entry, since classification could then never
// succeed.
func WithAnchors(anchors []Anchor) Option {
	if len(anchors) == 0 {
		panic("classify: WithAnchors(empty)")
	}
	hasFunction := false
	for _, a := range anchors {
		if a.Role == RoleFunction {
			hasFunction = true
			break
		}
	}
	if !hasFunction {
		panic("classify: WithAnchors without RoleFunction anchor")
	}
	return func(c *config) {
		c.anchors = append([]Anchor(nil), anchors...)
	}
}
