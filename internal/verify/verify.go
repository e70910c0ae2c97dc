// Package verify cross-checks the algorithm variants of package bitwise over
// a range of inputs.
package verify

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/23skdu/bitwise/internal/errors"
	"github.com/23skdu/bitwise/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Config bounds a verify run. From and To are inclusive.
type Config struct {
	From          uint32
	To            uint32
	Workers       int
	ChunkSize     int
	MaxMismatches int
}

// DefaultConfig checks every 16-bit input with four workers.
func DefaultConfig() Config {
	return Config{
		From:          0,
		To:            1<<16 - 1,
		Workers:       4,
		ChunkSize:     4096,
		MaxMismatches: 16,
	}
}

// Validate reports an invalid range or pool size.
func (c Config) Validate() error {
	switch {
	case c.To < c.From:
		return errors.NewConfigurationError("verify", "range end precedes start").
			WithContext("from", c.From).WithContext("to", c.To)
	case c.Workers <= 0:
		return errors.NewConfigurationError("verify", "workers must be positive")
	case c.ChunkSize <= 0:
		return errors.NewConfigurationError("verify", "chunk size must be positive")
	}
	return nil
}

// Mismatch records one input on which a family's variants disagreed.
type Mismatch struct {
	Family string
	Input  uint32
	Detail string
}

// Report summarizes a run.
type Report struct {
	RunID      string
	Checked    uint64
	Mismatches []Mismatch
	// Dropped counts mismatches beyond Config.MaxMismatches.
	Dropped  uint64
	Duration time.Duration
}

type collector struct {
	mu      sync.Mutex
	limit   int
	found   []Mismatch
	dropped uint64
}

func (c *collector) add(m Mismatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.found) < c.limit {
		c.found = append(c.found, m)
		return
	}
	c.dropped++
}

// Run checks every input in [cfg.From, cfg.To] against all variant families.
// It returns a computation error when any family disagrees and the context
// error when ctx ends first; the report is filled in either case.
func Run(ctx context.Context, logger zerolog.Logger, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if cfg.MaxMismatches <= 0 {
		cfg.MaxMismatches = DefaultConfig().MaxMismatches
	}

	report := Report{RunID: uuid.New().String()}
	logger = logger.With().Str("component", "verify").Str("run_id", report.RunID).Logger()
	logger.Info().
		Uint32("from", cfg.From).
		Uint32("to", cfg.To).
		Int("workers", cfg.Workers).
		Msg("verify started")

	start := time.Now()
	var checked atomic.Uint64
	found := &collector{limit: cfg.MaxMismatches}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	chunk := uint64(cfg.ChunkSize)
	last := uint64(cfg.To)
	for lo := uint64(cfg.From); lo <= last; lo += chunk {
		if gCtx.Err() != nil {
			break
		}
		hi := min(lo+chunk-1, last)
		g.Go(func() error {
			return verifyChunk(gCtx, uint32(lo), uint32(hi), found, &checked)
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	report.Checked = checked.Load()
	report.Mismatches = found.found
	report.Dropped = found.dropped
	report.Duration = time.Since(start)

	total := len(report.Mismatches) + int(report.Dropped)
	switch {
	case err != nil:
		metrics.VerifyRunsTotal.WithLabelValues("canceled").Inc()
		logger.Warn().Err(err).Uint64("checked", report.Checked).Msg("verify interrupted")
		return report, err
	case total > 0:
		metrics.VerifyRunsTotal.WithLabelValues("mismatch").Inc()
		logger.Error().Int("mismatches", total).Uint64("checked", report.Checked).Msg("variants disagree")
		return report, errors.NewComputationError("verify", "variants disagree").
			WithContext("run_id", report.RunID).
			WithContext("mismatches", total)
	default:
		metrics.VerifyRunsTotal.WithLabelValues("ok").Inc()
		logger.Info().
			Uint64("checked", report.Checked).
			Dur("duration", report.Duration).
			Msg("verify finished")
		return report, nil
	}
}

func verifyChunk(ctx context.Context, lo, hi uint32, found *collector, checked *atomic.Uint64) error {
	mismatches := make(map[string]int)
	var n uint64
	for v := uint64(lo); v <= uint64(hi); v++ {
		if n%1024 == 0 && ctx.Err() != nil {
			break
		}
		for _, c := range checks {
			if detail := c.run(uint32(v)); detail != "" {
				mismatches[c.family]++
				found.add(Mismatch{Family: c.family, Input: uint32(v), Detail: detail})
			}
		}
		n++
	}

	checked.Add(n)
	for _, c := range checks {
		metrics.VerifyChecksTotal.WithLabelValues(c.family).Add(float64(n))
		if m := mismatches[c.family]; m > 0 {
			metrics.VerifyMismatchesTotal.WithLabelValues(c.family).Add(float64(m))
		}
	}
	return ctx.Err()
}
