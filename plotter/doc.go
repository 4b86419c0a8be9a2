// Package plotter binds the funcplot pipeline to a host canvas: one-shot
// plotting of the current selection, and a cancellable refresh loop that
// keeps the emitted artifact in sync with its source labels.
//
// What:
//
//   - Plotter wires a canvas.Canvas to the classify → parse → sample
//     pipeline, with injected logging and per-stage options.
//   - Plot runs the pipeline once and creates the vector artifact; its name
//     embeds the formula's literal source text for traceability.
//   - Artifact.Watch re-derives inputs on a fixed interval (default 1s)
//     and updates the artifact's geometry in place, but only when the
//     parsed inputs materially changed, compared by structural equality.
//     A failed tick is skipped, never surfaced; the loop stops when its
//     context is cancelled and always releases its timer.
//
// Concurrency:
//
//	Each artifact serializes its refreshes behind a mutex, so at most one
//	refresh is in flight per artifact even if Watch and manual Refresh
//	calls overlap. The pipeline itself is pure; the canvas is the only
//	shared state and is owned by the host.
//
// Failure policy (whole pipeline):
//
//	classification, parse and sampling failures abort one invocation or
//	one tick: no artifact is created or half-updated, and the loop never
//	crashes. Skips are logged at debug level through the injected zap
//	logger (a no-op logger by default).
package plotter
