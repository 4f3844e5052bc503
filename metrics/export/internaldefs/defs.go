package internaldefs

import (
	goPassgen "github.com/MrEthical07/goPassgen"
)

// BucketCount is the number of latency buckets in every histogram.
const BucketCount = 8

// CounterDef names one engine counter for export.
type CounterDef struct {
	ID   goPassgen.MetricID
	Name string
	Help string
}

// HistogramDef names one engine latency histogram for export.
type HistogramDef struct {
	ID   goPassgen.MetricID
	Name string
	Help string
}

// AuditDroppedName is exported alongside the engine counters.
const (
	AuditDroppedName = "passgen_audit_dropped_total"
	AuditDroppedHelp = "Audit events dropped before delivery."
)

var CounterDefs = []CounterDef{
	{ID: goPassgen.MetricGenerateSuccess, Name: "passgen_generate_success_total", Help: "Passwords generated from options."},
	{ID: goPassgen.MetricGenerateRejected, Name: "passgen_generate_rejected_total", Help: "Generation requests rejected for invalid options."},
	{ID: goPassgen.MetricGenerateFailure, Name: "passgen_generate_failure_total", Help: "Generation requests failed on a resource error."},
	{ID: goPassgen.MetricPatternSuccess, Name: "passgen_pattern_success_total", Help: "Passwords generated from templates."},
	{ID: goPassgen.MetricPatternRejected, Name: "passgen_pattern_rejected_total", Help: "Malformed templates."},
	{ID: goPassgen.MetricBulkSuccess, Name: "passgen_bulk_success_total", Help: "Completed bulk batches."},
	{ID: goPassgen.MetricBulkFailure, Name: "passgen_bulk_failure_total", Help: "Bulk batches that returned an error."},
	{ID: goPassgen.MetricRepairApplied, Name: "passgen_repair_applied_total", Help: "Positions rewritten to satisfy category minimums."},
	{ID: goPassgen.MetricAssessTotal, Name: "passgen_assess_total", Help: "Password assessments."},
	{ID: goPassgen.MetricWeakPatternDetected, Name: "passgen_weak_pattern_detected_total", Help: "Assessments matching a weak pattern."},
	{ID: goPassgen.MetricDictionaryWordDetected, Name: "passgen_dictionary_word_detected_total", Help: "Assessments matching a dictionary word."},
	{ID: goPassgen.MetricDuplicateDetected, Name: "passgen_duplicate_detected_total", Help: "Passwords already present in history."},
	{ID: goPassgen.MetricHistoryUnavailable, Name: "passgen_history_unavailable_total", Help: "Failed history backend calls."},
	{ID: goPassgen.MetricReceiptIssued, Name: "passgen_receipt_issued_total", Help: "Signed generation receipts."},
	{ID: goPassgen.MetricReceiptRejected, Name: "passgen_receipt_rejected_total", Help: "Receipts that failed verification."},
}

var HistogramDefs = []HistogramDef{
	{ID: goPassgen.MetricGenerateLatency, Name: "passgen_generate_latency_seconds", Help: "Generation latency histogram."},
	{ID: goPassgen.MetricAssessLatency, Name: "passgen_assess_latency_seconds", Help: "Assessment latency histogram."},
}

// HistogramBounds are the upper bounds, in seconds, of the engine's
// microsecond buckets.
var HistogramBounds = [BucketCount]string{
	"0.00005",
	"0.0001",
	"0.00025",
	"0.0005",
	"0.001",
	"0.005",
	"0.025",
	"+Inf",
}

// HistogramBoundSuffix renders HistogramBounds as instrument-name suffixes.
var HistogramBoundSuffix = [BucketCount]string{
	"50us",
	"100us",
	"250us",
	"500us",
	"1ms",
	"5ms",
	"25ms",
	"inf",
}

// CumulativeBuckets converts per-bucket counts from a snapshot into running
// totals. Missing buckets count as zero.
func CumulativeBuckets(raw []uint64) [BucketCount]uint64 {
	var out [BucketCount]uint64
	var running uint64
	for i := 0; i < BucketCount; i++ {
		if i < len(raw) {
			running += raw[i]
		}
		out[i] = running
	}
	return out
}
