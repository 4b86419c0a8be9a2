// Package canvas models the host design surface funcplot reads from and
// writes to: positioned elements with a type tag, and the two collaborator
// interfaces the pipeline depends on.
//
// What:
//
//   - Node is a read-only view of one host element: type, bounding box and,
//     for text elements, the characters it displays. Ownership stays with
//     the host; funcplot only reads.
//   - Selector supplies the current selection (order-irrelevant).
//   - Artifacts creates and updates vector-path artifacts from polyline
//     geometry. Either the whole artifact is written or none of it.
//   - Canvas combines both, which is what a real host plugin bridge implements.
//   - MemCanvas is a thread-safe in-memory Canvas for tests and embedded
//     hosts: settable selection, uuid artifact IDs, retained params and a
//     write counter for asserting refresh semantics.
//
// Why:
//
//   - Host element creation and selection retrieval are thin glue over an
//     external environment; keeping them behind interfaces keeps the core
//     pipeline pure and testable.
//
// Errors:
//
//   - ErrNoSuchNode: UpdateVector addressed an unknown artifact id.
package canvas
