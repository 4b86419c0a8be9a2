package mathexpr

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Option customizes expression compilation.
type Option func(*config)

type config struct {
	consts Constants
	funcs  map[string]func(float64) float64
}

// WithConstants replaces the constant table. Panics on nil: an expression
// without constants is expressed with an empty table, never a nil one.
func WithConstants(c Constants) Option {
	if c == nil {
		panic("mathexpr: WithConstants(nil)")
	}
	return func(cfg *config) {
		cfg.consts = c
	}
}

// WithFunctions replaces the bound function table. Panics on nil.
func WithFunctions(fns map[string]func(float64) float64) Option {
	if fns == nil {
		panic("mathexpr: WithFunctions(nil)")
	}
	return func(cfg *config) {
		cfg.funcs = fns
	}
}

// Expr is a compiled expression in the free variable x. It is immutable and
// safe for concurrent evaluation.
type Expr struct {
	src  string
	prog *vm.Program
	env  map[string]any // constants + functions, never mutated after build
}

// Compile validates src and returns an evaluable expression. The constant
// and function tables are fixed at compile time per Expr; nothing is shared
// process-wide.
func Compile(src string, opts ...Option) (*Expr, error) {
	cfg := config{consts: DefaultConstants(), funcs: DefaultFunctions()}
	for _, opt := range opts {
		opt(&cfg)
	}

	prog, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrParse, src, err)
	}

	env := make(map[string]any, len(cfg.consts)+len(cfg.funcs))
	for name, v := range cfg.consts {
		env[name] = v
	}
	for name, fn := range cfg.funcs {
		env[name] = fn
	}

	return &Expr{src: src, prog: prog, env: env}, nil
}

// Source returns the literal expression text, for artifact naming.
func (e *Expr) Source() string { return e.src }

// Eval evaluates the expression with the given binding for x.
// Integer results are widened to float64.
func (e *Expr) Eval(x float64) (float64, error) {
	return e.run(map[string]any{"x": x})
}

// EvalNumber compiles and evaluates a constant expression; the grammar and
// constant table of Compile, with no x binding. Used for axis-bound labels.
func EvalNumber(src string, opts ...Option) (float64, error) {
	e, err := Compile(src, opts...)
	if err != nil {
		return 0, err
	}

	return e.run(nil)
}

// run executes the program against the base env plus extra bindings.
func (e *Expr) run(extra map[string]any) (float64, error) {
	env := make(map[string]any, len(e.env)+len(extra))
	for name, v := range e.env {
		env[name] = v
	}
	for name, v := range extra {
		env[name] = v
	}

	out, err := expr.Run(e.prog, env)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrEval, e.src, err)
	}

	return toFloat(out, e.src)
}

// toFloat widens any numeric result to float64.
func toFloat(v any, src string) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %q: result %T is not numeric", ErrEval, src, v)
	}
}
