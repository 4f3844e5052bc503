package goPassgen

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generate draws one password for opts. On error the result is nil and no
// secret material survives the call.
func (e *Engine) Generate(ctx context.Context, opts Options) (*PasswordResult, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}

	start := time.Now()
	res, err := e.generate(ctx, opts)
	if e.metrics.LatencyEnabled() {
		e.metrics.Observe(MetricGenerateLatency, time.Since(start))
	}

	if err != nil {
		if errors.Is(err, ErrConfiguration) {
			e.metricInc(MetricGenerateRejected)
		} else {
			e.metricInc(MetricGenerateFailure)
		}
		e.logFailure(auditEventGenerate, err)
	} else {
		e.metricInc(MetricGenerateSuccess)
		e.recordGenerated(ctx, res)
	}

	e.emitAudit(ctx, auditEventGenerate, err == nil, err, func() map[string]string {
		return resultMetadata(res, opts.Length)
	})
	return res, err
}

// GenerateDefault is Generate with GenerationConfig.Defaults.
func (e *Engine) GenerateDefault(ctx context.Context) (*PasswordResult, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}
	return e.Generate(ctx, e.config.Generation.Defaults)
}

// GenerateFromPattern produces one character per template code: l lowercase,
// U uppercase, n number, s special. An unknown code fails the whole call
// with an ErrPattern error before any randomness is drawn. The entropy floor
// does not apply to explicit templates.
func (e *Engine) GenerateFromPattern(ctx context.Context, pattern string) (*PasswordResult, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}

	start := time.Now()
	res, err := e.generatePattern(ctx, pattern)
	if e.metrics.LatencyEnabled() {
		e.metrics.Observe(MetricGenerateLatency, time.Since(start))
	}

	if err != nil {
		if errors.Is(err, ErrPattern) {
			e.metricInc(MetricPatternRejected)
		} else {
			e.metricInc(MetricGenerateFailure)
		}
		e.logFailure(auditEventGeneratePattern, err)
	} else {
		e.metricInc(MetricPatternSuccess)
	}

	e.emitAudit(ctx, auditEventGeneratePattern, err == nil, err, func() map[string]string {
		return resultMetadata(res, len(pattern))
	})
	return res, err
}

// GenerateBulk produces count independent passwords for opts on a bounded
// worker pool. It is all-or-nothing: if any generation fails or ctx ends
// before every password is produced, every result already produced is
// destroyed and the error is returned.
func (e *Engine) GenerateBulk(ctx context.Context, opts Options, count int) ([]*PasswordResult, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}

	batchID := uuid.NewString()
	results, err := e.generateBulk(ctx, opts, count)
	if err != nil {
		e.metricInc(MetricBulkFailure)
		e.logger.Debug("bulk generation aborted", zap.String("batch_id", batchID), zap.Int("count", count), zap.Error(err))
		if errors.Is(err, ErrResource) {
			e.logFailure(auditEventGenerateBulk, err)
		}
	} else {
		e.metricInc(MetricBulkSuccess)
		e.metricAdd(MetricGenerateSuccess, len(results))
	}

	e.emitAudit(ctx, auditEventGenerateBulk, err == nil, err, func() map[string]string {
		return map[string]string{
			"batch_id": batchID,
			"count":    strconv.Itoa(count),
			"length":   strconv.Itoa(opts.Length),
		}
	})
	return results, err
}

func (e *Engine) generate(ctx context.Context, opts Options) (*PasswordResult, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	if err := e.ValidateOptions(opts); err != nil {
		return nil, err
	}

	res, err := e.gen.Generate(opts)
	if err != nil {
		return nil, err
	}
	e.metricAdd(MetricRepairApplied, res.Repairs)
	return res, nil
}

func (e *Engine) generatePattern(ctx context.Context, pattern string) (*PasswordResult, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	res, err := e.gen.FromPattern(pattern)
	if err != nil {
		return nil, err
	}
	e.recordGenerated(ctx, res)
	return res, nil
}

func (e *Engine) generateBulk(parent context.Context, opts Options, count int) ([]*PasswordResult, error) {
	if count < 1 || count > e.config.Generation.MaxBulk {
		return nil, ErrBulkCount
	}
	if err := e.ValidateOptions(opts); err != nil {
		return nil, err
	}
	if parent == nil {
		parent = context.Background()
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	workers := e.config.Generation.BulkWorkers
	if workers > count {
		workers = count
	}

	var (
		results  = make([]*PasswordResult, count)
		jobs     = make(chan int)
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := e.generate(ctx, opts)
				if err != nil {
					fail(err)
					continue
				}
				results[i] = res
			}
		}()
	}

feed:
	for i := 0; i < count; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	err := firstErr
	if err == nil {
		for _, r := range results {
			if r == nil {
				err = parent.Err()
				if err == nil {
					err = context.Canceled
				}
				break
			}
		}
	}
	if err != nil {
		for _, r := range results {
			r.Destroy()
		}
		return nil, err
	}
	// Only a delivered batch reaches the history.
	for _, r := range results {
		e.recordGenerated(parent, r)
	}
	return results, nil
}

func (e *Engine) recordGenerated(ctx context.Context, res *PasswordResult) {
	if e.history == nil || !e.config.History.RecordGenerated {
		return
	}

	dup, err := e.history.Remember(ctx, res.Bytes())
	if err != nil {
		e.metricInc(MetricHistoryUnavailable)
		e.logger.Warn("history record failed", zap.Error(err))
		return
	}
	if dup {
		e.metricInc(MetricDuplicateDetected)
		e.logger.Warn("generated password already present in history")
	}
}

func resultMetadata(res *PasswordResult, requestedLength int) map[string]string {
	if res == nil {
		return map[string]string{
			"length": strconv.Itoa(requestedLength),
		}
	}
	return map[string]string{
		"length":   strconv.Itoa(res.Length),
		"entropy":  strconv.FormatFloat(res.Entropy, 'f', 2, 64),
		"score":    strconv.Itoa(res.Score),
		"category": res.Category.String(),
		"charset":  res.Charset.Codes(),
		"repairs":  strconv.Itoa(res.Repairs),
	}
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}
