package goPassgen

import (
	"time"

	"github.com/MrEthical07/goPassgen/assess"
	"github.com/MrEthical07/goPassgen/generator"
	"github.com/MrEthical07/goPassgen/strength"
)

// SecurityReport summarizes the security-relevant settings of a built Engine.
type SecurityReport struct {
	// RandomSource is "crypto/rand" or "custom" when WithRandomSource was used.
	RandomSource string
	// FallbackRandom is always false: generation fails rather than fall back
	// to a non-cryptographic generator.
	FallbackRandom bool
	// UnbiasedSelection is always true: indexes are rejection sampled.
	UnbiasedSelection bool

	DefaultLength           int
	DefaultCharset          string
	DefaultEntropyBits      float64
	DefaultCategory         StrengthCategory
	MinEntropyBits          float64
	MaxBulk                 int
	GuessesPerSecond        float64
	DefaultCrackTimeSeconds float64

	HistoryEnabled      bool
	HistoryPeppered     bool
	HistoryTTL          time.Duration
	Argon2              FingerprintReport
	ReceiptsEnabled     bool
	ReceiptAlgorithm    string
	ReceiptTTL          time.Duration
	ReceiptFingerprints bool
	AuditEnabled        bool
	MetricsEnabled      bool
}

// FingerprintReport is the argon2id cost of history fingerprints.
type FingerprintReport struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	KeyLength   uint32
}

// SecurityReport returns the current security posture. It performs no I/O.
func (e *Engine) SecurityReport() SecurityReport {
	if e == nil {
		return SecurityReport{}
	}

	defaults := e.config.Generation.Defaults
	entropy := generator.Entropy(defaults.Length, defaults.Charset)

	source := "crypto/rand"
	if e.customRandom {
		source = "custom"
	}

	r := SecurityReport{
		RandomSource:            source,
		UnbiasedSelection:       true,
		DefaultLength:           defaults.Length,
		DefaultCharset:          defaults.Charset.Codes(),
		DefaultEntropyBits:      entropy,
		DefaultCategory:         strength.ForScore(generator.ScoreForEntropy(entropy)),
		MinEntropyBits:          e.config.Generation.MinEntropyBits,
		MaxBulk:                 e.config.Generation.MaxBulk,
		GuessesPerSecond:        e.assessor.GuessesPerSecond(),
		DefaultCrackTimeSeconds: assess.CrackTime(entropy, e.assessor.GuessesPerSecond()),
		HistoryEnabled:          e.history != nil,
		ReceiptsEnabled:         e.receipts != nil,
		AuditEnabled:            e.audit != nil,
		MetricsEnabled:          e.metrics.Enabled(),
	}

	if r.HistoryEnabled {
		r.HistoryPeppered = len(e.config.History.Pepper) > 0
		r.HistoryTTL = e.config.History.TTL
		r.Argon2 = FingerprintReport{
			Memory:      e.config.History.Memory,
			Time:        e.config.History.Time,
			Parallelism: e.config.History.Parallelism,
			KeyLength:   e.config.History.KeyLength,
		}
	}
	if r.ReceiptsEnabled {
		r.ReceiptAlgorithm = e.config.Receipt.SigningMethod
		r.ReceiptTTL = e.config.Receipt.TTL
		r.ReceiptFingerprints = e.config.Receipt.IncludeFingerprint
	}
	return r
}
