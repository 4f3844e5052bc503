package goPassgen

import (
	"errors"

	"github.com/MrEthical07/goPassgen/assess"
	"github.com/MrEthical07/goPassgen/generator"
	"github.com/MrEthical07/goPassgen/history"
	"github.com/MrEthical07/goPassgen/internal/audit"
	"github.com/MrEthical07/goPassgen/receipt"
	"go.uber.org/zap"
)

// Engine is the generation and assessment facade. Build one with [Builder].
//
// Engine methods are safe for concurrent use.
type Engine struct {
	config   Config
	gen      *generator.Generator
	assessor *assess.Assessor
	history  *history.Tracker
	receipts *receipt.Manager
	audit    *audit.Dispatcher
	metrics  *Metrics
	logger   *zap.Logger

	customRandom bool
}

// Close flushes pending audit events. The Engine must not be used afterwards.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
	_ = e.logger.Sync()
}

// AuditDropped returns the number of audit events dropped before delivery:
// full buffer, canceled context, or emitted after Close.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// AuditStats returns the dispatcher counters. It is zero when audit is
// disabled.
func (e *Engine) AuditStats() AuditStats {
	if e == nil {
		return AuditStats{}
	}
	return e.audit.Stats()
}

// MetricsSnapshot returns a copy of the engine metrics.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	if e == nil {
		return Config{}
	}
	return cloneConfig(e.config)
}

// Validate reports whether opts would be accepted by Generate. It applies the
// engine's entropy floor as well as the option invariants.
func (e *Engine) Validate(opts Options) bool {
	return e.ValidateOptions(opts) == nil
}

// ValidateOptions is Validate with the reason. The error wraps
// ErrConfiguration.
func (e *Engine) ValidateOptions(opts Options) error {
	if e == nil {
		return ErrEngineNotReady
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if floor := e.config.Generation.MinEntropyBits; floor > 0 {
		if generator.Entropy(opts.Length, opts.Charset) < floor {
			return ErrEntropyBelowFloor
		}
	}
	return nil
}

// Similar reports whether a and b are positionally similar under the
// configured threshold. Passwords of different length are never similar.
func (e *Engine) Similar(a, b string) bool {
	if e == nil {
		return false
	}
	return assess.Similar(a, b, e.config.Assessment.SimilarityThreshold)
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) metricAdd(id MetricID, n int) {
	if e == nil || e.metrics == nil || n <= 0 {
		return
	}
	e.metrics.Add(id, uint64(n))
}

func (e *Engine) logFailure(op string, err error) {
	switch {
	case errors.Is(err, ErrResource):
		e.logger.Error("operation failed", zap.String("op", op), zap.Error(err))
	default:
		e.logger.Debug("request rejected", zap.String("op", op), zap.Error(err))
	}
}
