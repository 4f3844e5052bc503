package goPassgen

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MrEthical07/goPassgen/internal/secmem"
	"go.uber.org/zap"
)

// Assess scores password. The result depends on password alone; the engine
// only adds metrics and an audit event. IsDuplicate is always false here; use
// AssessAndRecord for history-aware assessment.
func (e *Engine) Assess(ctx context.Context, password string) SecurityAssessment {
	if e == nil {
		return SecurityAssessment{}
	}

	start := time.Now()
	a := e.assessor.Assess(password)
	if e.metrics.LatencyEnabled() {
		e.metrics.Observe(MetricAssessLatency, time.Since(start))
	}
	e.recordAssessment(ctx, a)
	return a
}

// AssessAndRecord scores password, records it in the history and sets
// IsDuplicate when it had been recorded before. The assessment is returned
// even when the history call fails; the error then wraps
// ErrHistoryUnavailable.
func (e *Engine) AssessAndRecord(ctx context.Context, password string) (SecurityAssessment, error) {
	if e == nil {
		return SecurityAssessment{}, ErrEngineNotReady
	}

	a := e.Assess(ctx, password)
	dup, err := e.Remember(ctx, password)
	if err != nil {
		return a, err
	}
	return a.WithDuplicate(dup), nil
}

// Remember records password in the history and reports whether it was
// already present.
func (e *Engine) Remember(ctx context.Context, password string) (bool, error) {
	if e == nil {
		return false, ErrEngineNotReady
	}
	if e.history == nil {
		return false, ErrHistoryDisabled
	}

	b := []byte(password)
	defer secmem.Wipe(b)

	dup, err := e.history.Remember(ctx, b)
	if err != nil {
		err = e.historyError(err)
	} else if dup {
		e.metricInc(MetricDuplicateDetected)
	}

	e.emitAudit(ctx, auditEventHistoryRecord, err == nil, err, func() map[string]string {
		return map[string]string{"duplicate": strconv.FormatBool(dup)}
	})
	return dup, err
}

// IsDuplicate reports whether password is present in the history without
// recording it.
func (e *Engine) IsDuplicate(ctx context.Context, password string) (bool, error) {
	if e == nil {
		return false, ErrEngineNotReady
	}
	if e.history == nil {
		return false, ErrHistoryDisabled
	}

	b := []byte(password)
	defer secmem.Wipe(b)

	seen, err := e.history.Seen(ctx, b)
	if err != nil {
		return false, e.historyError(err)
	}
	if seen {
		e.metricInc(MetricDuplicateDetected)
	}
	return seen, nil
}

// Forget removes password from the history.
func (e *Engine) Forget(ctx context.Context, password string) error {
	if e == nil {
		return ErrEngineNotReady
	}
	if e.history == nil {
		return ErrHistoryDisabled
	}

	b := []byte(password)
	defer secmem.Wipe(b)

	if err := e.history.Forget(ctx, b); err != nil {
		return e.historyError(err)
	}
	return nil
}

// PingHistory checks the history backend.
func (e *Engine) PingHistory(ctx context.Context) error {
	if e == nil {
		return ErrEngineNotReady
	}
	if e.history == nil {
		return ErrHistoryDisabled
	}
	if err := e.history.Ping(ctx); err != nil {
		return e.historyError(err)
	}
	return nil
}

func (e *Engine) historyError(err error) error {
	e.metricInc(MetricHistoryUnavailable)
	e.logger.Warn("history backend call failed", zap.Error(err))
	return fmt.Errorf("%w: %v", ErrHistoryUnavailable, err)
}

func (e *Engine) recordAssessment(ctx context.Context, a SecurityAssessment) {
	e.metricInc(MetricAssessTotal)
	if a.HasWeakPattern {
		e.metricInc(MetricWeakPatternDetected)
	}
	if a.HasDictionaryWord {
		e.metricInc(MetricDictionaryWordDetected)
	}

	e.emitAudit(ctx, auditEventAssess, true, nil, func() map[string]string {
		return map[string]string{
			"score":           strconv.Itoa(a.Score),
			"category":        a.Category.String(),
			"weak_pattern":    strconv.FormatBool(a.HasWeakPattern),
			"dictionary_word": strconv.FormatBool(a.HasDictionaryWord),
		}
	})
}
