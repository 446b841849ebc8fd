package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrPanicked is wrapped by errors returned when a case's Op panics.
var ErrPanicked = errors.New("benchmark operation panicked")

// maxBatch caps calibration so a no-op case cannot grow the batch forever.
const maxBatch = 1 << 30

// Runner measures a single case.
// This interface lets a different timing engine stand in for Sampler.
type Runner interface {
	// Run measures c and returns its result. It blocks until the
	// measurement finishes, ctx is done, or c.Op panics.
	Run(ctx context.Context, c Case) (Result, error)
}

// Sampler is the default Runner: warm up, calibrate a batch size, then
// collect fixed-size batches until Config.Duration has elapsed.
type Sampler struct {
	Config Config
	Logger *slog.Logger
}

// NewSampler creates a new Sampler. A nil logger discards output.
func NewSampler(cfg Config, logger *slog.Logger) *Sampler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sampler{Config: cfg, Logger: logger}
}

// Run implements Runner.
func (s *Sampler) Run(ctx context.Context, c Case) (Result, error) {
	if err := s.Config.Validate(); err != nil {
		return Result{}, err
	}

	if err := s.warmup(ctx, c.Op); err != nil {
		return Result{}, err
	}

	count, err := s.calibrate(ctx, c.Op)
	if err != nil {
		return Result{}, err
	}
	s.Logger.Debug("calibrated batch size", "case", c.Name, "count", count)

	var sample []float64
	var iterations int64
	start := time.Now()
	for len(sample) < s.Config.MinSamples || time.Since(start) < s.Config.Duration {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		elapsed, err := runBatch(c.Op, count)
		if err != nil {
			return Result{}, err
		}
		sample = append(sample, elapsed.Seconds()/float64(count))
		iterations += int64(count)
	}

	stats := ComputeStats(sample)
	result := Result{
		Name:       c.Name,
		Stats:      stats,
		Count:      count,
		Iterations: iterations,
		Elapsed:    time.Since(start),
	}
	if stats.Mean > 0 {
		result.Hz = 1 / stats.Mean
	}
	return result, nil
}

// warmup runs op until Config.Warmup has passed. Nothing is recorded.
func (s *Sampler) warmup(ctx context.Context, op func()) error {
	if s.Config.Warmup <= 0 {
		return nil
	}
	deadline := time.Now().Add(s.Config.Warmup)
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := runBatch(op, 1); err != nil {
			return err
		}
	}
	return nil
}

// calibrate doubles the batch size until one batch takes at least
// Config.MinSampleTime.
func (s *Sampler) calibrate(ctx context.Context, op func()) (int, error) {
	count := 1
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		elapsed, err := runBatch(op, count)
		if err != nil {
			return 0, err
		}
		if elapsed >= s.Config.MinSampleTime || count >= maxBatch {
			return count, nil
		}
		count *= 2
	}
}

// runBatch times n calls of op, turning a panic into an error.
func runBatch(op func(), n int) (elapsed time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	start := time.Now()
	for i := 0; i < n; i++ {
		op()
	}
	return time.Since(start), nil
}
