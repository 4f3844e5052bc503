package goPassgen

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MrEthical07/goPassgen/assess"
	"github.com/MrEthical07/goPassgen/generator"
	"github.com/MrEthical07/goPassgen/history"
)

// Config is the full engine configuration.
//
// Config instances are intended to be configured during initialization and then treated as immutable.
type Config struct {
	Generation GenerationConfig
	Assessment AssessmentConfig
	History    HistoryConfig
	Receipt    ReceiptConfig
	Audit      AuditConfig
	Metrics    MetricsConfig
}

/*
====================================
GENERATION CONFIG
====================================
*/

// GenerationConfig controls generation defaults and bulk limits.
type GenerationConfig struct {
	// Defaults is used by GenerateDefault and reported by SecurityReport.
	Defaults Options
	// MaxBulk caps GenerateBulk, at most MaxBulkGenerate.
	MaxBulk int
	// BulkWorkers bounds concurrent generation inside one bulk call.
	BulkWorkers int
	// MinEntropyBits rejects option sets whose theoretical entropy is lower.
	// Zero disables the floor.
	MinEntropyBits float64
}

/*
====================================
ASSESSMENT CONFIG
====================================
*/

// AssessmentConfig controls the attacker model and similarity checks.
type AssessmentConfig struct {
	GuessesPerSecond    float64
	SimilarityThreshold float64
}

/*
====================================
HISTORY CONFIG
====================================
*/

// HistoryConfig controls duplicate tracking. History requires a Redis client.
type HistoryConfig struct {
	Enabled bool
	// RecordGenerated stores every generated password's fingerprint.
	RecordGenerated bool
	RedisPrefix     string
	// TTL of zero keeps fingerprints indefinitely.
	TTL         time.Duration
	Pepper      []byte
	Memory      uint32
	Time        uint32
	Parallelism uint8
	KeyLength   uint32
}

/*
====================================
RECEIPT CONFIG
====================================
*/

// ReceiptConfig controls signed generation receipts.
type ReceiptConfig struct {
	Enabled       bool
	TTL           time.Duration
	SigningMethod string // "ed25519" (default), "hs256" optional
	PrivateKey    []byte
	PublicKey     []byte
	Issuer        string
	KeyID         string
	// IncludeFingerprint embeds the history fingerprint when history is enabled.
	IncludeFingerprint bool
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls in-process counters and histograms.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns a configuration with history and receipts disabled.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	fp := history.DefaultFingerprintConfig()
	return Config{
		Generation: GenerationConfig{
			Defaults:    generator.DefaultOptions(),
			MaxBulk:     MaxBulkGenerate,
			BulkWorkers: 4,
		},
		Assessment: AssessmentConfig{
			GuessesPerSecond:    assess.DefaultGuessesPerSecond,
			SimilarityThreshold: 0.8,
		},
		History: HistoryConfig{
			RedisPrefix: history.DefaultPrefix,
			TTL:         0,
			Memory:      fp.Memory,
			Time:        fp.Time,
			Parallelism: fp.Parallelism,
			KeyLength:   fp.KeyLength,
		},
		Receipt: ReceiptConfig{
			TTL:           24 * time.Hour,
			SigningMethod: "ed25519",
			Issuer:        "goPassgen",
		},
		Audit: AuditConfig{
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.History.Pepper = cloneBytes(cfg.History.Pepper)
	out.Receipt.PrivateKey = cloneBytes(cfg.Receipt.PrivateKey)
	out.Receipt.PublicKey = cloneBytes(cfg.Receipt.PublicKey)
	return out
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (c HistoryConfig) fingerprintConfig() history.FingerprintConfig {
	return history.FingerprintConfig{
		Memory:      c.Memory,
		Time:        c.Time,
		Parallelism: c.Parallelism,
		KeyLength:   c.KeyLength,
		Pepper:      c.Pepper,
	}
}

/*
====================================
VALIDATION
====================================
*/

// Validate checks every section. All failures wrap ErrConfiguration.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		if errors.Is(err, ErrConfiguration) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return nil
}

func (c *Config) validate() error {
	// Generation
	if err := c.Generation.Defaults.Validate(); err != nil {
		return fmt.Errorf("Generation Defaults: %w", err)
	}
	if c.Generation.MaxBulk < 1 || c.Generation.MaxBulk > MaxBulkGenerate {
		return fmt.Errorf("Generation MaxBulk must be between 1 and %d", MaxBulkGenerate)
	}
	if c.Generation.BulkWorkers < 1 {
		return errors.New("Generation BulkWorkers must be >= 1")
	}
	if c.Generation.MinEntropyBits < 0 || math.IsNaN(c.Generation.MinEntropyBits) {
		return errors.New("Generation MinEntropyBits must be >= 0")
	}
	if c.Generation.MinEntropyBits > 0 {
		if generator.Entropy(c.Generation.Defaults.Length, c.Generation.Defaults.Charset) < c.Generation.MinEntropyBits {
			return errors.New("Generation Defaults are below MinEntropyBits")
		}
	}

	// Assessment
	if c.Assessment.GuessesPerSecond <= 0 || math.IsInf(c.Assessment.GuessesPerSecond, 0) || math.IsNaN(c.Assessment.GuessesPerSecond) {
		return errors.New("Assessment GuessesPerSecond must be a positive finite number")
	}
	if c.Assessment.SimilarityThreshold <= 0 || c.Assessment.SimilarityThreshold > 1 {
		return errors.New("Assessment SimilarityThreshold must be in (0, 1]")
	}

	// History
	if c.History.Enabled {
		if strings.TrimSpace(c.History.RedisPrefix) == "" {
			return errors.New("History RedisPrefix must not be empty")
		}
		if c.History.TTL < 0 {
			return errors.New("History TTL must be >= 0")
		}
		if err := c.History.fingerprintConfig().Validate(); err != nil {
			return err
		}
	}
	if c.History.RecordGenerated && !c.History.Enabled {
		return errors.New("History RecordGenerated requires History Enabled")
	}

	// Receipt
	if c.Receipt.Enabled {
		if c.Receipt.TTL <= 0 {
			return errors.New("Receipt TTL must be > 0")
		}
		switch c.Receipt.SigningMethod {
		case "ed25519":
			if len(c.Receipt.PublicKey) == 0 {
				return errors.New("ed25519 requires PublicKey")
			}
		case "hs256":
			if len(c.Receipt.PrivateKey) == 0 {
				return errors.New("hs256 requires PrivateKey")
			}
		default:
			return errors.New("unsupported Receipt signing method")
		}
		if c.Receipt.IncludeFingerprint && !c.History.Enabled {
			return errors.New("Receipt IncludeFingerprint requires History Enabled")
		}
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0")
	}

	// Metrics
	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		return errors.New("Metrics EnableLatencyHistograms requires Metrics Enabled")
	}

	return nil
}
