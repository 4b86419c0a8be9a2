// Package plot turns classified selection roles into typed plotting inputs
// and samples the formula into screen-space polyline geometry.
//
// What:
//
//   - Parse compiles the formula label, evaluates the axis-bound labels,
//     and determines the target rectangle (placeholder box verbatim, or an
//     inset of the classified elements' bounds when no placeholder exists).
//   - Sample evaluates the formula over an evenly spaced grid, auto-ranges
//     the output axis when range bounds are unspecified, and emits an open
//     polyline: one vertex every 2 pixel-units of rectangle width.
//
// Bound policy:
//
//	A bound label that fails to evaluate is treated as unset; the bound
//	degrades to its default (domain) or to auto-range (range). Only a
//	formula that fails to compile is fatal to the invocation.
//
// Domain mapping:
//
//	The default maps sample i of n onto
//	minDomain + i*(maxDomain-minDomain)/(n-1), covering the domain span
//	exactly. The system this package reimplements instead stepped by
//	1/(maxDomain-minDomain) per sample, which only covers the span when it
//	equals 1; that behavior is preserved behind WithCompatDomainStep for
//	callers needing output parity with the original.
//
// Errors:
//
//   - ErrNoFunction: the function role is missing or its text failed to
//     compile (wraps mathexpr.ErrParse in the latter case).
//   - ErrInsufficientResolution: the target rectangle yields fewer than 3
//     samples.
//   - ErrDegenerateRange: explicit or auto-ranged bounds collapse to a
//     single value, making the y-scale undefined.
//   - mathexpr.ErrEval: the formula failed at some sample point.
package plot
