package securerand

import (
	"bytes"
	"errors"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy pool closed") }

func TestInitIdempotent(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := Init(); err != nil {
		t.Fatalf("second Init error: %v", err)
	}
}

func TestIndexRejectsBiasedBytes(t *testing.T) {
	// n=10: limit is 250, so 250..255 must be skipped.
	src := New(bytes.NewReader([]byte{255, 250, 13}))

	got, err := src.Index(10)
	if err != nil {
		t.Fatalf("Index error: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected 3 after rejecting two bytes, got %d", got)
	}
}

func TestIndexBounds(t *testing.T) {
	src := New(nil)
	if _, err := src.Index(0); err == nil {
		t.Fatal("expected error for n=0")
	}
	if _, err := src.Index(257); err == nil {
		t.Fatal("expected error for n=257")
	}
	for i := 0; i < 1000; i++ {
		v, err := src.Index(62)
		if err != nil {
			t.Fatalf("Index error: %v", err)
		}
		if v < 0 || v >= 62 {
			t.Fatalf("index %d out of range", v)
		}
	}
}

func TestIndexSingleValueNeedsNoEntropy(t *testing.T) {
	src := New(failingReader{})
	v, err := src.Index(1)
	if err != nil || v != 0 {
		t.Fatalf("expected 0,nil got %d,%v", v, err)
	}
}

func TestIndexFailsHardOnReaderError(t *testing.T) {
	src := New(failingReader{})
	if _, err := src.Index(26); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestPick(t *testing.T) {
	src := New(bytes.NewReader([]byte{2}))
	c, err := src.Pick("abcd")
	if err != nil {
		t.Fatalf("Pick error: %v", err)
	}
	if c != 'c' {
		t.Fatalf("expected 'c', got %q", c)
	}
	if _, err := src.Pick(""); !errors.Is(err, ErrEmptyAlphabet) {
		t.Fatalf("expected ErrEmptyAlphabet, got %v", err)
	}
}
