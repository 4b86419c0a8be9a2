package plot

import "errors"

var (
	// ErrNoFunction indicates the function role is missing from the role
	// map or its text failed to compile.
	ErrNoFunction = errors.New("plot: no usable function expression")
	// ErrInsufficientResolution indicates the target rectangle is too
	// narrow to place at least 3 samples.
	ErrInsufficientResolution = errors.New("plot: rectangle too narrow for a curve")
	// ErrDegenerateRange indicates the range bounds collapse to a single
	// value, leaving the y-scale undefined.
	ErrDegenerateRange = errors.New("plot: range bounds are equal")
)
