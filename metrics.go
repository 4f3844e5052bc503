package goPassgen

import (
	"sync/atomic"
	"time"
)

// MetricID identifies one engine counter or histogram.
type MetricID uint16

const (
	// MetricGenerateSuccess counts passwords returned by Generate and GenerateDefault.
	MetricGenerateSuccess MetricID = iota
	// MetricGenerateRejected counts generation requests rejected as configuration errors.
	MetricGenerateRejected
	// MetricGenerateFailure counts generation requests that failed on a resource error.
	MetricGenerateFailure
	// MetricPatternSuccess counts passwords returned by GenerateFromPattern.
	MetricPatternSuccess
	// MetricPatternRejected counts malformed pattern templates.
	MetricPatternRejected
	// MetricBulkSuccess counts completed bulk batches.
	MetricBulkSuccess
	// MetricBulkFailure counts bulk batches that returned an error.
	MetricBulkFailure
	// MetricRepairApplied counts positions rewritten by the repair pass.
	MetricRepairApplied
	// MetricAssessTotal counts assessments.
	MetricAssessTotal
	// MetricWeakPatternDetected counts assessments that matched a weak pattern.
	MetricWeakPatternDetected
	// MetricDictionaryWordDetected counts assessments that matched a dictionary word.
	MetricDictionaryWordDetected
	// MetricDuplicateDetected counts passwords found in the history store.
	MetricDuplicateDetected
	// MetricHistoryUnavailable counts failed history backend calls.
	MetricHistoryUnavailable
	// MetricReceiptIssued counts signed receipts.
	MetricReceiptIssued
	// MetricReceiptRejected counts receipts that failed verification.
	MetricReceiptRejected
	// MetricGenerateLatency is the generation latency histogram.
	MetricGenerateLatency
	// MetricAssessLatency is the assessment latency histogram.
	MetricAssessLatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

var histogramIDs = [...]MetricID{MetricGenerateLatency, MetricAssessLatency}

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds lock-free counters and latency histograms.
//
// Metrics instances are safe for concurrent use.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [metricIDCount]paddedCounter
	histograms    [metricIDCount]metricHistogram
}

// MetricsSnapshot is a point-in-time copy of all metrics.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// NewMetrics returns Metrics configured by cfg.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

// Enabled reports whether counters record.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// LatencyEnabled reports whether histograms record.
func (m *Metrics) LatencyEnabled() bool {
	return m != nil && m.enableLatency
}

// Inc adds one to counter id.
func (m *Metrics) Inc(id MetricID) {
	m.Add(id, 1)
}

// Add adds n to counter id.
func (m *Metrics) Add(id MetricID, n uint64) {
	if m == nil || !m.enabled || id >= metricIDCount || n == 0 {
		return
	}
	atomic.AddUint64(&m.counters[id].value, n)
}

// Observe records d in histogram id. Non-histogram IDs are ignored.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enabled || !m.enableLatency || id >= metricIDCount {
		return
	}
	if !isHistogram(id) {
		return
	}

	b := bucketIndex(d)
	atomic.AddUint64(&m.histograms[id].buckets[b], 1)
}

// Value returns counter id.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies every counter and, when enabled, every histogram.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}

	s := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, int(metricIDCount)),
		Histograms: make(map[MetricID][]uint64, len(histogramIDs)),
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		if isHistogram(id) {
			continue
		}
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}

	if m.enableLatency {
		for _, id := range histogramIDs {
			buckets := make([]uint64, histBucketCount)
			for i := 0; i < histBucketCount; i++ {
				buckets[i] = atomic.LoadUint64(&m.histograms[id].buckets[i])
			}
			s.Histograms[id] = buckets
		}
	}

	return s
}

func isHistogram(id MetricID) bool {
	for _, h := range histogramIDs {
		if h == id {
			return true
		}
	}
	return false
}

// Buckets: ≤50µs, ≤100µs, ≤250µs, ≤500µs, ≤1ms, ≤5ms, ≤25ms, +Inf.
func bucketIndex(d time.Duration) int {
	us := d.Microseconds()

	switch {
	case us <= 50:
		return 0
	case us <= 100:
		return 1
	case us <= 250:
		return 2
	case us <= 500:
		return 3
	case us <= 1000:
		return 4
	case us <= 5000:
		return 5
	case us <= 25000:
		return 6
	default:
		return 7
	}
}
