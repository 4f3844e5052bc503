// Package audit delivers audit events off the caller's path.
//
// # Components
//
//   - [Sink]: event consumer. Channel, JSON lines, zap, fan-out and no-op
//     implementations are provided.
//   - [Dispatcher]: single-goroutine relay with drop-if-full or block-if-full
//     semantics, sink panic isolation and delivery counters.
//   - [Scrub]: strips metadata keys that name secret material before an event
//     is queued.
//
// # Architecture boundaries
//
// This package owns buffering and delivery. It does NOT decide which events
// to emit; the Engine does.
//
// # What this package must NOT do
//
//   - Filter or suppress whole events based on business logic.
//   - Import goPassgen or any sibling internal package.
//   - Perform network I/O beyond what a caller-supplied Sink does.
package audit
