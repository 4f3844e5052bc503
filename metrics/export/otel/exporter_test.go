package otel

import (
	"context"
	"sync"
	"testing"

	goPassgen "github.com/MrEthical07/goPassgen"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type fakeSource struct {
	mu       sync.RWMutex
	snapshot goPassgen.MetricsSnapshot
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() goPassgen.MetricsSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := goPassgen.MetricsSnapshot{
		Counters:   make(map[goPassgen.MetricID]uint64, len(f.snapshot.Counters)),
		Histograms: make(map[goPassgen.MetricID][]uint64, len(f.snapshot.Histograms)),
	}
	for k, v := range f.snapshot.Counters {
		out.Counters[k] = v
	}
	for k, buckets := range f.snapshot.Histograms {
		out.Histograms[k] = append([]uint64(nil), buckets...)
	}
	return out
}

func (f *fakeSource) AuditDropped() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.dropped
}

func newTestMeter() (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	return reader, provider
}

func findInt64(rm metricdata.ResourceMetrics, name string) (int64, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				if len(data.DataPoints) > 0 {
					return data.DataPoints[0].Value, true
				}
			case metricdata.Gauge[int64]:
				if len(data.DataPoints) > 0 {
					return data.DataPoints[0].Value, true
				}
			}
		}
	}
	return 0, false
}

func TestExporterRegistersAndCollects(t *testing.T) {
	reader, provider := newTestMeter()
	meter := provider.Meter("passgen-test")

	src := &fakeSource{
		snapshot: goPassgen.MetricsSnapshot{
			Counters: map[goPassgen.MetricID]uint64{
				goPassgen.MetricGenerateSuccess: 3,
			},
			Histograms: map[goPassgen.MetricID][]uint64{
				goPassgen.MetricGenerateLatency: {1, 1, 1, 1, 1, 1, 1, 1},
			},
		},
		dropped: 1,
	}

	exp, err := NewExporter(meter, src)
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	defer func() {
		if err := exp.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	checks := map[string]int64{
		"passgen_generate_success_total":                3,
		"passgen_generate_latency_seconds_bucket_le_1ms": 5,
		"passgen_generate_latency_seconds_count":         8,
		"passgen_audit_dropped_total":                    1,
	}
	for name, want := range checks {
		got, ok := findInt64(rm, name)
		if !ok {
			t.Fatalf("metric %s not collected", name)
		}
		if got != want {
			t.Fatalf("metric %s: expected %d, got %d", name, want, got)
		}
	}
}

func TestExporterRejectsNilArguments(t *testing.T) {
	_, provider := newTestMeter()
	meter := provider.Meter("passgen-test")

	if _, err := NewExporter(meter, nil); err != ErrNilSource {
		t.Fatalf("expected ErrNilSource, got %v", err)
	}
	if _, err := NewExporter(nil, &fakeSource{}); err != ErrNilMeter {
		t.Fatalf("expected ErrNilMeter, got %v", err)
	}
}

func TestExporterReadsEngine(t *testing.T) {
	reader, provider := newTestMeter()

	engine, err := goPassgen.New().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	exp, err := NewExporter(provider.Meter("passgen-test"), engine)
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	defer exp.Close()

	engine.Assess(context.Background(), "password123")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if got, _ := findInt64(rm, "passgen_weak_pattern_detected_total"); got != 1 {
		t.Fatalf("expected weak pattern counter 1, got %d", got)
	}
}

func TestExporterConcurrentCollectNoPanic(t *testing.T) {
	reader, provider := newTestMeter()
	meter := provider.Meter("passgen-test")

	src := &fakeSource{
		snapshot: goPassgen.MetricsSnapshot{
			Counters: map[goPassgen.MetricID]uint64{
				goPassgen.MetricAssessTotal: 1,
			},
			Histograms: map[goPassgen.MetricID][]uint64{
				goPassgen.MetricAssessLatency: {1, 0, 0, 0, 0, 0, 0, 0},
			},
		},
	}

	exp, err := NewExporter(meter, src)
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	defer func() {
		if err := exp.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v uint64) {
			defer wg.Done()
			src.mu.Lock()
			src.snapshot.Counters[goPassgen.MetricAssessTotal] = v
			src.mu.Unlock()

			var rm metricdata.ResourceMetrics
			_ = reader.Collect(context.Background(), &rm)
		}(uint64(i + 1))
	}
	wg.Wait()
}
