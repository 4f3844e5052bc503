package history

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces history keys.
const DefaultPrefix = "pg:h:"

// Store records fingerprints of previously issued passwords in Redis. Only
// fingerprints are stored, never plaintext.
type Store struct {
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewStore returns a Store writing keys under prefix that expire after ttl. A
// zero ttl keeps entries until Forget is called. An empty prefix uses
// DefaultPrefix.
func NewStore(client redis.UniversalClient, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{
		redis:  client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *Store) key(fingerprint string) string {
	return s.prefix + fingerprint
}

// Remember records fingerprint and reports whether it was already present.
// SET NX makes concurrent Remember calls for the same fingerprint agree on a
// single first writer.
func (s *Store) Remember(ctx context.Context, fingerprint string) (bool, error) {
	if fingerprint == "" {
		return false, ErrEmptyFingerprint
	}

	created, err := s.redis.SetNX(ctx, s.key(fingerprint), time.Now().Unix(), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return !created, nil
}

// Seen reports whether fingerprint has been recorded and not yet expired.
func (s *Store) Seen(ctx context.Context, fingerprint string) (bool, error) {
	if fingerprint == "" {
		return false, ErrEmptyFingerprint
	}

	n, err := s.redis.Exists(ctx, s.key(fingerprint)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return n > 0, nil
}

// Forget removes fingerprint. Missing keys are not an error.
func (s *Store) Forget(ctx context.Context, fingerprint string) error {
	if fingerprint == "" {
		return ErrEmptyFingerprint
	}

	if err := s.redis.Del(ctx, s.key(fingerprint)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Ping checks backend reachability.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
