// Package step defines the shared schema every instrumented algorithm in
// algoviz records into: one Step per observable event, appended to a
// Recorder and handed back as an immutable Trace.
//
// What
//
//   - Step: a flat record with a Kind tag, a human-readable Description,
//     the Pseudocode line it corresponds to, and kind-specific payload
//     fields (array snapshot, compared indices, call stack, queue, rods...).
//   - Recorder: append-only collector. Emit adds a step, Finalize returns
//     the completed Trace and seals the recorder.
//   - Frames: an explicit call-frame stack that algorithms push before a
//     simulated recursive descent and pop right after it returns, so the
//     frame contents are observable at every emitted step.
//
// Snapshots
//
//	Algorithms mutate their working arrays, queues, stacks and rods in
//	place. Any payload embedding such a structure must be a copy taken at
//	emission time (see Ints, Strings and Frames.Snapshot). Two steps never
//	share a backing array.
//
// Options
//
//   - WithCapacity(n): preallocate room for n steps.
//   - WithObserver(fn): hook invoked after each appended step.
//
// Concurrency
//
//	A Recorder belongs to exactly one algorithm invocation. It is not safe
//	for concurrent use and never needs to be.
package step
