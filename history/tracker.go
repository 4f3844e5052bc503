package history

import (
	"context"

	"github.com/MrEthical07/goPassgen/internal/secmem"
)

// Tracker pairs a Fingerprinter with a Store so callers deal in passwords
// rather than fingerprints.
type Tracker struct {
	fp    *Fingerprinter
	store *Store
}

// NewTracker returns a Tracker over fp and store.
func NewTracker(fp *Fingerprinter, store *Store) *Tracker {
	return &Tracker{fp: fp, store: store}
}

// Fingerprint exposes the fingerprint a password would be stored under.
func (t *Tracker) Fingerprint(password []byte) string {
	return t.fp.Fingerprint(password)
}

// Remember records password and reports whether it had been seen before.
func (t *Tracker) Remember(ctx context.Context, password []byte) (bool, error) {
	return t.store.Remember(ctx, t.fp.Fingerprint(password))
}

// RememberString is Remember for a string password.
func (t *Tracker) RememberString(ctx context.Context, password string) (bool, error) {
	b := []byte(password)
	defer secmem.Wipe(b)
	return t.Remember(ctx, b)
}

// Seen reports whether password has been recorded.
func (t *Tracker) Seen(ctx context.Context, password []byte) (bool, error) {
	return t.store.Seen(ctx, t.fp.Fingerprint(password))
}

// SeenString is Seen for a string password.
func (t *Tracker) SeenString(ctx context.Context, password string) (bool, error) {
	b := []byte(password)
	defer secmem.Wipe(b)
	return t.Seen(ctx, b)
}

// Forget removes password from the history.
func (t *Tracker) Forget(ctx context.Context, password []byte) error {
	return t.store.Forget(ctx, t.fp.Fingerprint(password))
}

// Ping checks the backing store.
func (t *Tracker) Ping(ctx context.Context) error {
	return t.store.Ping(ctx)
}

// Match reports whether password derives fingerprint.
func (t *Tracker) Match(password []byte, fingerprint string) bool {
	return t.fp.Match(password, fingerprint)
}
