// Package bench measures the throughput of named operations.
//
// A Suite holds Cases in registration order. Run measures each case in turn
// on the calling goroutine through a Runner (Sampler by default) and returns
// one Result per case:
//
//	suite := bench.NewSuite("sort", bench.NewSampler(cfg, logger), logger)
//	suite.Add("a", opA).Add("b", opB)
//	results, err := suite.Run(ctx)
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoCases is returned by Run when nothing was registered.
var ErrNoCases = errors.New("suite has no cases")

// Case is a named operation to measure.
type Case struct {
	Name string
	Op   func()
}

// Suite runs a list of cases.
type Suite struct {
	// Name identifies the suite in logs.
	Name string

	runner Runner
	logger *slog.Logger
	cases  []Case
}

// NewSuite creates a new Suite. A nil logger discards output.
func NewSuite(name string, runner Runner, logger *slog.Logger) *Suite {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Suite{
		Name:   name,
		runner: runner,
		logger: logger,
	}
}

// Add registers a case. An empty name becomes "case N", N being the 1-based
// registration index.
func (s *Suite) Add(name string, op func()) *Suite {
	if name == "" {
		name = fmt.Sprintf("case %d", len(s.cases)+1)
	}
	s.cases = append(s.cases, Case{Name: name, Op: op})
	return s
}

// Cases returns a copy of the registered cases.
func (s *Suite) Cases() []Case {
	return append([]Case(nil), s.cases...)
}

// Names returns the registered case names in order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.cases))
	for i, c := range s.cases {
		names[i] = c.Name
	}
	return names
}

// Run measures every case in registration order.
// It stops at the first failing case and returns the results collected so
// far along with the error.
func (s *Suite) Run(ctx context.Context) ([]Result, error) {
	if len(s.cases) == 0 {
		return nil, ErrNoCases
	}

	s.logger.Info("starting suite", "suite", s.Name, "cases", len(s.cases))

	results := make([]Result, 0, len(s.cases))
	for i, c := range s.cases {
		s.logger.Info("running case",
			"suite", s.Name,
			"case", c.Name,
			"progress", fmt.Sprintf("%d/%d", i+1, len(s.cases)))

		r, err := s.runner.Run(ctx, c)
		if err != nil {
			return results, fmt.Errorf("case %q: %w", c.Name, err)
		}

		s.logger.Debug("case complete",
			"suite", s.Name,
			"case", c.Name,
			"hz", r.Hz,
			"samples", len(r.Stats.Sample))
		results = append(results, r)
	}

	s.logger.Info("suite complete", "suite", s.Name)
	return results, nil
}
