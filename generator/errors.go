package generator

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	// ErrConfiguration marks invalid generation options.
	ErrConfiguration = errors.New("configuration error")
	// ErrResource marks allocation or secure-random failures.
	ErrResource = errors.New("resource error")
	// ErrPattern marks malformed pattern templates.
	ErrPattern = errors.New("pattern error")
)

var (
	ErrInvalidLength        = fmt.Errorf("%w: length must be between %d and %d", ErrConfiguration, MinLength, MaxLength)
	ErrNoCharset            = fmt.Errorf("%w: at least one character set must be selected", ErrConfiguration)
	ErrLengthBelowTypes     = fmt.Errorf("%w: length is shorter than the number of required character types", ErrConfiguration)
	ErrNegativeMinimum      = fmt.Errorf("%w: minimum counts must not be negative", ErrConfiguration)
	ErrMinimumUnavailable   = fmt.Errorf("%w: minimum requested for a character set that is not selected", ErrConfiguration)
	ErrMinimumsExceedLength = fmt.Errorf("%w: required character counts exceed password length", ErrConfiguration)
	ErrEmptyPool            = fmt.Errorf("%w: character pool is empty", ErrConfiguration)

	ErrRandomUnavailable = fmt.Errorf("%w: secure random source unavailable", ErrResource)
	ErrRepairExhausted   = fmt.Errorf("%w: no repairable position left", ErrResource)

	ErrEmptyPattern       = fmt.Errorf("%w: pattern is empty", ErrPattern)
	ErrPatternTooLong     = fmt.Errorf("%w: pattern longer than %d codes", ErrPattern, MaxLength)
	ErrInvalidPatternCode = fmt.Errorf("%w: unrecognized pattern code", ErrPattern)
)
