// Package history tracks previously issued passwords so callers can flag
// duplicates.
//
// # Storage
//
// A password is reduced to an argon2id fingerprint keyed by a deployment
// pepper and stored in Redis with SET NX and an optional TTL:
//
//	<prefix><base64url(argon2id(password, pepper))>
//
// # Architecture boundaries
//
// This package only answers "seen before?". Whether a duplicate is rejected
// or merely flagged on an assessment is decided by the Engine.
//
// # What this package must NOT do
//
//   - Store plaintext or reversible encodings of passwords.
//   - Log passwords, fingerprints or the pepper.
package history
