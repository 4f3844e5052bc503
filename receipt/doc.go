// Package receipt issues signed JWT receipts that attest to how a password was
// generated (length, entropy, score, charset, optional history fingerprint)
// without carrying the password.
package receipt
