package receipt

import "errors"

var (
	// ErrNoSigningKey is returned by Issue on a verify-only manager.
	ErrNoSigningKey = errors.New("receipt signing key not configured")
	// ErrInvalidReceipt wraps every verification failure.
	ErrInvalidReceipt = errors.New("invalid receipt")
)
