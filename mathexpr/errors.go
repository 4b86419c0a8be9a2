package mathexpr

import "errors"

var (
	// ErrParse indicates the expression source failed to compile.
	ErrParse = errors.New("mathexpr: parse failure")
	// ErrEval indicates evaluation failed at runtime: an unbound
	// identifier, a failed function call, or a non-numeric result.
	ErrEval = errors.New("mathexpr: eval failure")
)
