package goPassgen

import (
	"errors"
	"fmt"
	"io"

	"github.com/MrEthical07/goPassgen/assess"
	"github.com/MrEthical07/goPassgen/generator"
	"github.com/MrEthical07/goPassgen/history"
	"github.com/MrEthical07/goPassgen/internal/audit"
	"github.com/MrEthical07/goPassgen/internal/securerand"
	"github.com/MrEthical07/goPassgen/receipt"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Builder assembles an Engine.
//
// Builder instances are intended to be configured during initialization and
// then discarded; Build may be called once.
type Builder struct {
	config Config
	redis  redis.UniversalClient

	auditSink AuditSink
	logger    *zap.Logger
	random    io.Reader

	built bool
}

// New returns a Builder holding DefaultConfig.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration. cfg is copied.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis sets the client used by the password history. Any
// redis.UniversalClient works, including cluster and sentinel clients.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithAuditSink sets the destination for audit events. It has no effect
// unless Audit.Enabled is set.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithLogger sets the operational logger. The default discards everything.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithRandomSource replaces crypto/rand. Intended for deterministic tests; a
// reader that fails makes every generation fail with ErrRandomUnavailable.
func (b *Builder) WithRandomSource(r io.Reader) *Builder {
	b.random = r
	return b
}

// WithMetricsEnabled toggles in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles generation and assessment latency histograms.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and returns a ready Engine.
//
// Build fails when the configuration is invalid, when history is enabled
// without a Redis client, or when the system secure random source cannot be
// read. There is no fallback generator.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.History.Enabled && b.redis == nil {
		return nil, fmt.Errorf("%w: History requires redis client", ErrConfiguration)
	}

	if b.random == nil {
		if err := securerand.Init(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
		}
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := &Engine{
		config:       cloneConfig(cfg),
		gen:          generator.New(b.random),
		assessor:     assess.New(cfg.Assessment.GuessesPerSecond),
		metrics:      NewMetrics(cfg.Metrics),
		logger:       logger,
		customRandom: b.random != nil,
	}

	// -------- HISTORY --------
	if cfg.History.Enabled {
		fp, err := history.NewFingerprinter(cfg.History.fingerprintConfig())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		store := history.NewStore(b.redis, cfg.History.RedisPrefix, cfg.History.TTL)
		engine.history = history.NewTracker(fp, store)
	}

	// -------- RECEIPTS --------
	if cfg.Receipt.Enabled {
		rm, err := receipt.NewManager(receipt.Config{
			TTL:           cfg.Receipt.TTL,
			SigningMethod: receipt.SigningMethod(cfg.Receipt.SigningMethod),
			PrivateKey:    cloneBytes(cfg.Receipt.PrivateKey),
			PublicKey:     cloneBytes(cfg.Receipt.PublicKey),
			Issuer:        cfg.Receipt.Issuer,
			KeyID:         cfg.Receipt.KeyID,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		engine.receipts = rm
	}

	// Last, so a failed Build leaves no goroutine behind. Without an explicit
	// sink, audit events go to the engine logger.
	sink := b.auditSink
	if sink == nil && cfg.Audit.Enabled {
		sink = audit.NewZapSink(logger)
	}
	engine.audit = audit.NewDispatcher(audit.Config{
		Enabled:    cfg.Audit.Enabled,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
	}, sink)

	b.built = true

	logger.Debug("engine built",
		zap.Bool("history", engine.history != nil),
		zap.Bool("receipts", engine.receipts != nil),
		zap.Bool("audit", engine.audit != nil),
		zap.Bool("custom_random", engine.customRandom),
	)
	return engine, nil
}
