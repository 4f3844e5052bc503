package goPassgen

import (
	"context"
	"crypto/rand"
	"errors"
	"testing"
)

func TestGenerateBulkProducesDistinctPasswords(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	results, err := engine.GenerateBulk(context.Background(), DefaultOptions(), MaxBulkGenerate)
	if err != nil {
		t.Fatalf("GenerateBulk failed: %v", err)
	}
	if len(results) != MaxBulkGenerate {
		t.Fatalf("expected %d results, got %d", MaxBulkGenerate, len(results))
	}

	seen := make(map[string]struct{}, len(results))
	for i, res := range results {
		if res == nil {
			t.Fatalf("result %d is nil", i)
		}
		pw := res.Password()
		if _, dup := seen[pw]; dup {
			t.Fatalf("duplicate password in batch at %d", i)
		}
		seen[pw] = struct{}{}
		res.Destroy()
	}

	snap := engine.MetricsSnapshot()
	if snap.Counters[MetricBulkSuccess] != 1 {
		t.Fatalf("expected 1 bulk success, got %d", snap.Counters[MetricBulkSuccess])
	}
	if snap.Counters[MetricGenerateSuccess] != MaxBulkGenerate {
		t.Fatalf("expected %d generate successes, got %d", MaxBulkGenerate, snap.Counters[MetricGenerateSuccess])
	}
}

func TestGenerateBulkCountBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generation.MaxBulk = 10
	engine := newTestEngine(t, cfg)

	for _, count := range []int{-1, 0, 11, MaxBulkGenerate + 1} {
		results, err := engine.GenerateBulk(context.Background(), DefaultOptions(), count)
		if results != nil {
			t.Fatalf("count %d: expected nil results", count)
		}
		if !errors.Is(err, ErrBulkCount) || !errors.Is(err, ErrConfiguration) {
			t.Fatalf("count %d: expected bulk count error, got %v", count, err)
		}
	}

	results, err := engine.GenerateBulk(context.Background(), DefaultOptions(), 1)
	if err != nil || len(results) != 1 {
		t.Fatalf("expected single result, got %d %v", len(results), err)
	}
	results[0].Destroy()
}

func TestGenerateBulkInvalidOptions(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	_, err := engine.GenerateBulk(context.Background(), Options{Length: 4, Charset: CharsetConfig{Lowercase: true}}, 5)
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestGenerateBulkAllOrNothingOnRandomFailure(t *testing.T) {
	src := &limitedReader{r: rand.Reader}
	// Enough for a handful of passwords but not for fifty.
	src.n.Store(200)

	engine, err := New().WithRandomSource(src).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	results, err := engine.GenerateBulk(context.Background(), DefaultOptions(), 50)
	if results != nil {
		t.Fatalf("expected nil results, got %d", len(results))
	}
	if !errors.Is(err, ErrRandomUnavailable) {
		t.Fatalf("expected ErrRandomUnavailable, got %v", err)
	}
	if engine.MetricsSnapshot().Counters[MetricBulkFailure] != 1 {
		t.Fatal("expected bulk failure metric")
	}
}

func TestGenerateBulkCanceledContext(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := engine.GenerateBulk(ctx, DefaultOptions(), 20)
	if results != nil {
		t.Fatal("expected nil results")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateBulkConcurrentCallers(t *testing.T) {
	engine := newTestEngine(t, DefaultConfig())

	const callers = 8
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		go func() {
			results, err := engine.GenerateBulk(context.Background(), DefaultOptions(), 25)
			for _, r := range results {
				r.Destroy()
			}
			errs <- err
		}()
	}
	for i := 0; i < callers; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("GenerateBulk failed: %v", err)
		}
	}

	if got := engine.MetricsSnapshot().Counters[MetricBulkSuccess]; got != callers {
		t.Fatalf("expected %d bulk successes, got %d", callers, got)
	}
}
