// Package securerand provides the only randomness primitive used for secret
// material.
//
// # Architecture boundaries
//
// The package owns one-time probing of crypto/rand and unbiased index
// selection. It does not know about character categories or passwords.
//
// # What this package must NOT do
//
//   - Fall back to math/rand or any seeded generator when the secure source fails.
//   - Retain drawn bytes after returning an index.
package securerand
