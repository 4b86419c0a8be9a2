// Package mathexpr compiles and evaluates mathematical expressions in one
// free variable x, with the constants π and e built in.
//
// What:
//
//   - Compile validates an expression at parse time and returns an Expr
//     that can be evaluated repeatedly for different x bindings.
//   - EvalNumber evaluates constant expressions (axis-bound labels) that
//     must not reference x.
//   - Constants is the per-expression constant table. DefaultConstants
//     recognizes the ASCII spellings of pi case-insensitively, the Greek
//     letter π, and e, all at double precision.
//
// Why:
//
//	Formula labels are user-typed text ("sin(x*pi)", "2*e"); the pipeline
//	needs parse-time validation so a malformed formula fails the whole
//	invocation before any geometry is produced.
//
// The constant table is plain per-Expr configuration injected through
// WithConstants; there is no package-level mutable state, so two Exprs
// with different tables never interfere.
//
// Grammar is supplied by github.com/expr-lang/expr: arithmetic, ^ for
// exponentiation, parentheses, unicode identifiers. A small table of math
// functions (sin, cos, tan, sqrt, log, exp, …) is bound by default.
//
// Errors:
//
//   - ErrParse: malformed expression source (compile time).
//   - ErrEval: runtime evaluation failure: unknown identifier, call error,
//     or a non-numeric result.
package mathexpr
