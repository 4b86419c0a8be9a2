// Package classify maps an unordered selection of canvas elements to the
// semantic roles the plotting pipeline consumes: the mandatory formula
// label, the optional placeholder rectangle, and the optional axis-bound
// labels.
//
// What:
//
//   - An Anchor pairs a role with an expected element type and a normalized
//     position in the unit square: where an element of that role is
//     expected to be centered, relative to the selection's overall bounds.
//   - Classify normalizes every element's center into the selection's local
//     unit coordinates and assigns it a role when it sits strictly within
//     the threshold distance (default 0.1) of that role's anchor and its
//     type matches.
//
// Default anchor layout (unit square):
//
//	        function (0.5, 0)
//	maxRange ┌───────────────┐
//	(0, 0.1) │               │
//	         │  placeholder  │
//	minRange │  (0.5, 0.5)   │
//	(0, 0.9) └───────────────┘
//	   minDomain (0.1, 1)   maxDomain (0.9, 1)
//
// Ambiguity policy:
//
//	When several elements qualify for one role, the nearest to the anchor
//	wins; at equal distance the earlier element (input order) keeps the
//	role. Classification is therefore deterministic for any ordering of
//	the input, never iteration-order-dependent.
//
// Unmatched optional roles are simply absent from the result; absence means
// "use defaults" downstream. A missing function role is a failure, as is a
// selection whose overall bounds have zero width or height (normalization
// would be undefined).
//
// Complexity: O(anchors × elements) distance checks, O(1) space beyond the
// result map.
//
// Errors:
//
//   - ErrNoMatch: no element classified into the function role.
//   - ErrDegenerateSelection: overall bounds have zero width or height.
package classify
