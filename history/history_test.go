package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testFingerprintConfig() FingerprintConfig {
	return FingerprintConfig{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		KeyLength:   16,
		Pepper:      []byte("0123456789abcdef-pepper"),
	}
}

func newHistoryTest(t *testing.T, ttl time.Duration) (*Tracker, *miniredis.Miniredis, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	fp, err := NewFingerprinter(testFingerprintConfig())
	if err != nil {
		t.Fatalf("NewFingerprinter error: %v", err)
	}
	tr := NewTracker(fp, NewStore(rdb, "t:", ttl))
	return tr, mr, func() {
		_ = rdb.Close()
		mr.Close()
	}
}

func TestFingerprintConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FingerprintConfig)
	}{
		{"memory", func(c *FingerprintConfig) { c.Memory = 1024 }},
		{"time", func(c *FingerprintConfig) { c.Time = 0 }},
		{"parallelism", func(c *FingerprintConfig) { c.Parallelism = 0 }},
		{"key length", func(c *FingerprintConfig) { c.KeyLength = 8 }},
		{"pepper", func(c *FingerprintConfig) { c.Pepper = []byte("short") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testFingerprintConfig()
			tt.mutate(&cfg)
			if _, err := NewFingerprinter(cfg); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	if err := DefaultFingerprintConfig().Validate(); err == nil {
		t.Fatal("default config without pepper must not validate")
	}
}

func TestFingerprintStableAndPeppered(t *testing.T) {
	fp, err := NewFingerprinter(testFingerprintConfig())
	if err != nil {
		t.Fatalf("NewFingerprinter error: %v", err)
	}

	a := fp.FingerprintString("Correct-Horse-9!")
	b := fp.Fingerprint([]byte("Correct-Horse-9!"))
	if a != b {
		t.Fatal("expected stable fingerprint")
	}
	if strings.Contains(a, "Horse") || strings.ContainsAny(a, "+/=") {
		t.Fatalf("unexpected fingerprint encoding %q", a)
	}
	if fp.FingerprintString("Correct-Horse-9?") == a {
		t.Fatal("different passwords must not collide")
	}
	if !fp.Match([]byte("Correct-Horse-9!"), a) || fp.Match([]byte("nope"), a) {
		t.Fatal("Match mismatch")
	}

	other := testFingerprintConfig()
	other.Pepper = []byte("another-pepper-value!")
	fp2, err := NewFingerprinter(other)
	if err != nil {
		t.Fatalf("NewFingerprinter error: %v", err)
	}
	if fp2.FingerprintString("Correct-Horse-9!") == a {
		t.Fatal("expected pepper to change fingerprint")
	}
}

func TestFingerprinterCopiesPepper(t *testing.T) {
	cfg := testFingerprintConfig()
	fp, err := NewFingerprinter(cfg)
	if err != nil {
		t.Fatalf("NewFingerprinter error: %v", err)
	}
	before := fp.FingerprintString("Correct-Horse-9!")
	cfg.Pepper[0] ^= 0xff
	if fp.FingerprintString("Correct-Horse-9!") != before {
		t.Fatal("caller mutation leaked into fingerprinter")
	}
}

func TestTrackerRememberAndSeen(t *testing.T) {
	tr, mr, done := newHistoryTest(t, 0)
	defer done()
	ctx := context.Background()

	seen, err := tr.SeenString(ctx, "Correct-Horse-9!")
	if err != nil || seen {
		t.Fatalf("expected unseen, got %v %v", seen, err)
	}

	dup, err := tr.RememberString(ctx, "Correct-Horse-9!")
	if err != nil || dup {
		t.Fatalf("first remember: dup=%v err=%v", dup, err)
	}
	dup, err = tr.RememberString(ctx, "Correct-Horse-9!")
	if err != nil || !dup {
		t.Fatalf("second remember: dup=%v err=%v", dup, err)
	}

	seen, err = tr.SeenString(ctx, "Correct-Horse-9!")
	if err != nil || !seen {
		t.Fatalf("expected seen, got %v %v", seen, err)
	}

	for _, k := range mr.Keys() {
		if !strings.HasPrefix(k, "t:") || strings.Contains(k, "Horse") {
			t.Fatalf("unexpected key %q", k)
		}
	}

	if err := tr.Forget(ctx, []byte("Correct-Horse-9!")); err != nil {
		t.Fatalf("Forget error: %v", err)
	}
	seen, _ = tr.SeenString(ctx, "Correct-Horse-9!")
	if seen {
		t.Fatal("expected forgotten password to be unseen")
	}
}

func TestStoreTTLExpires(t *testing.T) {
	tr, mr, done := newHistoryTest(t, time.Minute)
	defer done()
	ctx := context.Background()

	if _, err := tr.RememberString(ctx, "Correct-Horse-9!"); err != nil {
		t.Fatalf("Remember error: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	seen, err := tr.SeenString(ctx, "Correct-Horse-9!")
	if err != nil || seen {
		t.Fatalf("expected expiry, got %v %v", seen, err)
	}
}

func TestStoreRejectsEmptyFingerprint(t *testing.T) {
	s := NewStore(nil, "", 0)
	ctx := context.Background()
	if _, err := s.Remember(ctx, ""); !errors.Is(err, ErrEmptyFingerprint) {
		t.Fatalf("expected ErrEmptyFingerprint, got %v", err)
	}
	if _, err := s.Seen(ctx, ""); !errors.Is(err, ErrEmptyFingerprint) {
		t.Fatalf("expected ErrEmptyFingerprint, got %v", err)
	}
	if err := s.Forget(ctx, ""); !errors.Is(err, ErrEmptyFingerprint) {
		t.Fatalf("expected ErrEmptyFingerprint, got %v", err)
	}
	if s.key("x") != DefaultPrefix+"x" {
		t.Fatal("expected default prefix")
	}
}

func TestStoreRedisUnavailable(t *testing.T) {
	tr, mr, done := newHistoryTest(t, 0)
	defer done()
	mr.Close()

	ctx := context.Background()
	if _, err := tr.RememberString(ctx, "Correct-Horse-9!"); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
	if err := tr.Ping(ctx); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
}
