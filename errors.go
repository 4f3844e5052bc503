package goPassgen

import (
	"errors"
	"fmt"

	"github.com/MrEthical07/goPassgen/generator"
	"github.com/MrEthical07/goPassgen/receipt"
)

// Error kinds. Match with errors.Is.
var (
	// ErrConfiguration marks invalid options or engine configuration. It is
	// always reported before any randomness is drawn.
	ErrConfiguration = generator.ErrConfiguration
	// ErrResource marks allocation, secure-random or backend failures.
	ErrResource = generator.ErrResource
	// ErrPattern marks malformed pattern templates.
	ErrPattern = generator.ErrPattern
)

var (
	ErrInvalidLength        = generator.ErrInvalidLength
	ErrNoCharset            = generator.ErrNoCharset
	ErrLengthBelowTypes     = generator.ErrLengthBelowTypes
	ErrNegativeMinimum      = generator.ErrNegativeMinimum
	ErrMinimumUnavailable   = generator.ErrMinimumUnavailable
	ErrMinimumsExceedLength = generator.ErrMinimumsExceedLength
	ErrRandomUnavailable    = generator.ErrRandomUnavailable
	ErrEmptyPattern         = generator.ErrEmptyPattern
	ErrPatternTooLong       = generator.ErrPatternTooLong
	ErrInvalidPatternCode   = generator.ErrInvalidPatternCode

	// ErrEntropyBelowFloor is returned when the options' theoretical entropy is
	// below GenerationConfig.MinEntropyBits.
	ErrEntropyBelowFloor = fmt.Errorf("%w: entropy below configured minimum", ErrConfiguration)
	// ErrBulkCount is returned for a bulk count outside 1..MaxBulk.
	ErrBulkCount = fmt.Errorf("%w: bulk count out of range", ErrConfiguration)
	// ErrHistoryUnavailable wraps history backend failures.
	ErrHistoryUnavailable = fmt.Errorf("%w: password history unavailable", ErrResource)

	// ErrHistoryDisabled is returned by history operations when no history is configured.
	ErrHistoryDisabled = errors.New("password history disabled")
	// ErrReceiptsDisabled is returned by receipt operations when receipts are off.
	ErrReceiptsDisabled = errors.New("receipts disabled")
	// ErrReceiptInvalid is returned for receipts that fail verification.
	ErrReceiptInvalid = receipt.ErrInvalidReceipt
	// ErrResultDestroyed is returned when a destroyed result is used.
	ErrResultDestroyed = errors.New("password result destroyed")
	// ErrEngineNotReady is returned by methods called on a nil Engine.
	ErrEngineNotReady = errors.New("engine not ready")
)
