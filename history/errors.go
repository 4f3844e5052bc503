package history

import "errors"

var (
	// ErrRedisUnavailable wraps any failure talking to the history backend.
	ErrRedisUnavailable = errors.New("redis unavailable")
	// ErrEmptyFingerprint is returned for a blank fingerprint key.
	ErrEmptyFingerprint = errors.New("empty fingerprint")
)
