package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goPassgen "github.com/MrEthical07/goPassgen"
	"github.com/MrEthical07/goPassgen/metrics/export/prometheus"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "", "optional config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	engineCfg := goPassgen.DefaultConfig()
	engineCfg.Metrics.EnableLatencyHistograms = true
	builder := goPassgen.New().WithLogger(logger)

	if cfg.History {
		client, cleanup, err := openRedis(cfg.Redis.Addr, logger)
		if err != nil {
			logger.Fatal("redis unavailable", zap.Error(err))
		}
		defer cleanup()

		engineCfg.History.Enabled = true
		engineCfg.History.RedisPrefix = cfg.Redis.Prefix
		engineCfg.History.TTL = time.Hour
		engineCfg.History.Pepper = []byte(uuid.NewString())
		builder = builder.WithRedis(client)
	}

	engine, err := builder.WithConfig(engineCfg).Build()
	if err != nil {
		logger.Fatal("build engine", zap.Error(err))
	}
	defer engine.Close()

	ctx := context.Background()
	opts := goPassgen.DefaultOptions()
	opts.Length = cfg.Bulk.Length
	if err := engine.ValidateOptions(opts); err != nil {
		logger.Fatal("invalid bench options", zap.Int("length", opts.Length), zap.Error(err))
	}

	bulkStats := runPhase(cfg.Bulk.Batches, cfg.Concurrency, func(int) error {
		results, err := engine.GenerateBulk(ctx, opts, cfg.Bulk.Size)
		for _, r := range results {
			r.Destroy()
		}
		return err
	})

	candidates := assessCandidates()
	assessStats := runPhase(cfg.Assess.Ops, cfg.Concurrency, func(i int) error {
		pw := candidates[i%len(candidates)]
		if cfg.History {
			_, err := engine.AssessAndRecord(ctx, pw)
			return err
		}
		engine.Assess(ctx, pw)
		return nil
	})

	fmt.Println("---- results ----")
	printStats("bulk", bulkStats)
	printStats("assess", assessStats)

	if cfg.Metrics {
		fmt.Println("---- metrics ----")
		fmt.Print(prometheus.NewExporter(engine).Render())
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	return zc.Build()
}

func openRedis(addr string, logger *zap.Logger) (redis.UniversalClient, func(), error) {
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}
	if addr != "" {
		client := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{addr}})
		logger.Info("using redis", zap.String("addr", addr))
		return client, func() { _ = client.Close() }, nil
	}

	mr, err := miniredis.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("start miniredis: %w", err)
	}
	client := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{mr.Addr()}})
	logger.Info("using miniredis", zap.String("addr", mr.Addr()))
	return client, func() {
		_ = client.Close()
		mr.Close()
	}, nil
}

// assessCandidates mixes weak and strong inputs so every detector runs.
func assessCandidates() []string {
	return []string{
		"password123",
		"Tr0ub4dor&3Xy",
		"qwertyuiop",
		"correct horse battery staple",
		"p4ssw0rd!",
		"Xk9#mQ2$vL7@nR4&",
		"aaaaaaaa",
		"Summer2024!",
	}
}

func runPhase(ops, concurrency int, op func(i int) error) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				t0 := time.Now()
				err := op(i)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return computeStats(time.Since(start), latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	return samples[(len(samples)-1)*p/100]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}
