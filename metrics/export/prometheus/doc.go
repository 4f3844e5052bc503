// Package prometheus renders engine counters and latency histograms in the
// Prometheus text exposition format.
//
// Counter names follow passgen_*_total. The two histograms are
// passgen_generate_latency_seconds and passgen_assess_latency_seconds, with
// bucket bounds from 50µs to 25ms.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry. Callers mount the Handler.
//   - Mutate engine state.
package prometheus
