package mathexpr

import "math"

// Constants maps identifier spellings to their values. Every spelling is a
// distinct entry: expression identifiers are matched verbatim, so
// case-insensitivity is expressed by enumerating the casings.
type Constants map[string]float64

// DefaultConstants returns the standard table: every casing of "pi", the
// Greek letter in both cases, and e. Values are exact double-precision
// math.Pi / math.E.
func DefaultConstants() Constants {
	return Constants{
		"pi": math.Pi,
		"pI": math.Pi,
		"Pi": math.Pi,
		"PI": math.Pi,
		"π":  math.Pi,
		"Π":  math.Pi,
		"e":  math.E,
		"E":  math.E,
	}
}

// DefaultFunctions returns the math functions bound into expressions by
// default. All take and return float64.
func DefaultFunctions() map[string]func(float64) float64 {
	return map[string]func(float64) float64{
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"asin": math.Asin,
		"acos": math.Acos,
		"atan": math.Atan,
		"sqrt": math.Sqrt,
		"log":  math.Log10,
		"ln":   math.Log,
		"exp":  math.Exp,
	}
}
