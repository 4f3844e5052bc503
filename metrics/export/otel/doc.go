// Package otel publishes engine counters and latency histograms as
// OpenTelemetry observable instruments.
//
// Every counter becomes an Int64ObservableCounter. Each histogram becomes one
// Int64ObservableGauge per cumulative bucket plus a count gauge. A single
// callback reads the engine snapshot on each collection.
//
// # What this package must NOT do
//
//   - Own the MeterProvider. Callers supply the Meter.
//   - Mutate engine state.
package otel
