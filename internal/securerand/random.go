package securerand

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrUnavailable is returned when the secure byte source cannot be read.
// There is no fallback generator: callers must treat this as fatal for the
// current operation.
var ErrUnavailable = errors.New("secure random source unavailable")

// ErrEmptyAlphabet is returned by Pick for an empty alphabet.
var ErrEmptyAlphabet = errors.New("empty alphabet")

var (
	initOnce sync.Once
	initErr  error
)

// Init probes the process-wide secure source once. Repeated calls return the
// first result and are safe from multiple goroutines.
func Init() error {
	initOnce.Do(func() {
		var probe [1]byte
		if _, err := io.ReadFull(rand.Reader, probe[:]); err != nil {
			initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	})
	return initErr
}

// Source draws uniformly distributed indexes from a byte reader.
//
// Indexes are produced by rejection sampling over single bytes: a byte is
// accepted only when it falls below the largest multiple of n that fits in
// 256, so every index in [0,n) is equally likely. Expected draws per index
// stay below two for any n <= 256.
type Source struct {
	r   io.Reader
	buf [1]byte
	mu  sync.Mutex
}

// New returns a Source reading from r, or from crypto/rand when r is nil.
func New(r io.Reader) *Source {
	if r == nil {
		r = rand.Reader
	}
	return &Source{r: r}
}

// Index returns a uniformly distributed value in [0,n). n must be in [1,256].
func (s *Source) Index(n int) (int, error) {
	if n <= 0 || n > 256 {
		return 0, fmt.Errorf("index bound %d out of range", n)
	}
	if n == 1 {
		return 0, nil
	}

	limit := 256 - (256 % n)

	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
			s.buf[0] = 0
			return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		b := int(s.buf[0])
		s.buf[0] = 0
		if b < limit {
			return b % n, nil
		}
	}
}

// Pick returns one byte of alphabet chosen uniformly at random.
func (s *Source) Pick(alphabet string) (byte, error) {
	if len(alphabet) == 0 {
		return 0, ErrEmptyAlphabet
	}
	i, err := s.Index(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}
