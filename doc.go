// Package funcplot turns a loose cluster of design-canvas elements (a
// formula label, an optional placeholder rectangle, and optional axis-bound
// labels) into a piecewise-linear vector path approximating the formula's
// graph, scaled to fit a target rectangle.
//
// 🚀 What is funcplot?
//
//	A small, host-agnostic library that takes the host's current selection
//	and produces ready-to-draw polyline geometry:
//		• Role classification: unordered elements → semantic roles, matched
//		  by proximity to expected normalized positions
//		• Input parsing: label text → compiled expression + numeric bounds
//		• Graph sampling: expression → evenly spaced screen-space polyline,
//		  with auto-ranging when bounds are omitted
//		• Refresh loop: periodic re-parse + re-sample, updating the output
//		  artifact only when inputs materially changed
//
// ✨ Why choose funcplot?
//
//   - Host-agnostic: the canvas is an interface; any selection provider and
//     vector-artifact sink plugs in (an in-memory canvas ships for tests)
//   - Deterministic: ambiguous role matches resolve nearest-distance-wins,
//     never by iteration order
//   - Fail-quiet: every failure aborts one invocation cleanly; no partial
//     artifacts, no crashed refresh loops
//
// Everything is organized under six subpackages:
//
//	geom/      - bounding boxes, centers, union, polyline vector networks
//	canvas/    - host element model, collaborator interfaces, MemCanvas
//	mathexpr/  - expression compilation & evaluation (π and e built in)
//	classify/  - anchor-table role classification of selections
//	plot/      - parsing classified roles and sampling the curve
//	plotter/   - the one-shot pipeline and the cancellable refresh loop
//
// Quick ASCII example of a recognized selection:
//
//	        sin(x*pi)          ← function label (text)
//	    ┌───────────────┐
//	 1 →│               │      ← placeholder (rectangle)
//	    │               │
//	 0 →└───────────────┘
//	    ↑0             1↑      ← domain labels (text)
//
// Dive into the per-package doc.go files for contracts, complexity notes and
// error tables.
//
//	go get github.com/plotforge/funcplot
package funcplot
