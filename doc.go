// Package goPassgen generates cryptographically random passwords and scores
// candidate passwords against a fixed heuristic model.
//
// The package is designed for concurrent server workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// goPassgen is the public surface. It exposes [Engine], [Builder], [Config] and value types
// (PasswordResult, SecurityAssessment, MetricsSnapshot). Generation lives in generator/,
// scoring in assess/, duplicate tracking in history/ and signed receipts in receipt/.
// Secure randomness, secret buffers and audit dispatch live under internal/ and are never
// exported.
//
// # What this package must NOT do
//
//   - Fall back to a non-cryptographic random generator.
//   - Write passwords to logs, audit events, metrics or receipts.
//   - Perform I/O outside of Engine methods. Build only probes the random source.
//   - Import any sub-package that re-imports goPassgen (no import cycles).
//
// # Performance contract
//
// Generate and Assess never touch the network unless History.RecordGenerated is set.
// History operations cost one Redis round-trip plus one argon2id derivation.
package goPassgen
