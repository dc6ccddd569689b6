// Package window implements the authoritative registry of open windows.
//
// The manager owns window lifecycle (open, focus, minimize, maximize, move,
// resize, close), stacking order, and change notification. It is constructed
// once at shell start and handed to every consumer; there is no hidden
// global store.
//
// Invariants:
//   - No two open windows share an ID
//   - ZOrder tokens come from a strictly increasing counter, never reused
//   - At most one window is active: greatest ZOrder among non-minimized
//   - Minimized windows keep geometry and ZOrder untouched
//   - Maximize/un-maximize round-trips geometry exactly via SavedGeometry
//
// Failure Semantics:
//   - Every mutation targeting a missing ID is a silent no-op
//   - No mutating call returns an error; every operation yields a valid state
//
// Subscriptions:
//   - Subscribe(listener) returns an unsubscribe func
//   - One listener call per committed operation (MinimizeAll is one commit)
//   - Listeners must not call back into the manager synchronously
package window
