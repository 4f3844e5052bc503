package goPassgen

import (
	"github.com/MrEthical07/goPassgen/assess"
	"github.com/MrEthical07/goPassgen/charset"
	"github.com/MrEthical07/goPassgen/generator"
	"github.com/MrEthical07/goPassgen/receipt"
	"github.com/MrEthical07/goPassgen/strength"
)

// PasswordResult owns one generated password. Release it with Destroy.
type PasswordResult = generator.Result

// SecurityAssessment is the outcome of scoring a password.
type SecurityAssessment = assess.Assessment

// Options configures one generation request.
type Options = generator.Options

// CharsetConfig selects the character categories for generation.
type CharsetConfig = charset.Config

// StrengthCategory is the six-level strength label.
type StrengthCategory = strength.Category

// ReceiptClaims is the verified content of a generation receipt.
type ReceiptClaims = receipt.Claims

const (
	VeryWeak   = strength.VeryWeak
	Weak       = strength.Weak
	Fair       = strength.Fair
	Good       = strength.Good
	Strong     = strength.Strong
	VeryStrong = strength.VeryStrong
)

const (
	// MinLength and MaxLength bound Options.Length.
	MinLength = generator.MinLength
	MaxLength = generator.MaxLength

	// MaxBulkGenerate caps GenerateBulk.
	MaxBulkGenerate = 100

	// RecommendedEntropyBits is a sensible GenerationConfig.MinEntropyBits.
	RecommendedEntropyBits = 64.0
)

// DefaultOptions returns the library default generation options.
func DefaultOptions() Options {
	return generator.DefaultOptions()
}
