// Command factorial measures how fast 100! is computed by folding 1..100
// with big-integer multiplication.
//
// Each run warms up for 3 seconds and samples for 20 seconds, then prints a
// single summary line.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"time"

	"github.com/drish/ben/pkg/bench"
	"github.com/drish/ben/pkg/cli"
	"github.com/drish/ben/pkg/factorial"
	"github.com/drish/ben/pkg/logging"
)

//go:embed README.md
var readmeMarkdown string

const n = 100

var sink *big.Int

// defaultConfig is bench.DefaultConfig with the longer factorial timings.
func defaultConfig() bench.Config {
	cfg := bench.DefaultConfig()
	cfg.Duration = 20 * time.Second
	cfg.Warmup = 3 * time.Second
	return cfg
}

// newSuite registers the single factorial(100) case.
func newSuite(runner bench.Runner, logger *slog.Logger) *bench.Suite {
	return bench.NewSuite("factorial", runner, logger).
		Add(fmt.Sprintf("factorial(%d)", n), func() {
			sink = factorial.Factorial(n)
		})
}

// run measures the suite and writes one summary line per case to w.
func run(ctx context.Context, w io.Writer, suite *bench.Suite) error {
	results, err := suite.Run(ctx)
	if err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	env, err := cli.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := defaultConfig()
	if err := bench.LoadEnv(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("factorial", flag.ExitOnError)
	opts, err := cli.ParseFlags(fs, os.Args[1:], &cfg, &env, "factorial -duration 5s")
	if err != nil {
		os.Exit(2)
	}

	if opts.Help {
		cli.PrintDocs(os.Stdout, readmeMarkdown)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Printf("factorial version %s\n", cli.Version)
		os.Exit(0)
	}

	logger := logging.New(os.Stderr, env.Level(), opts.JSONLogs)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	suite := newSuite(bench.NewSampler(cfg, logger), logger)

	if opts.List {
		fmt.Print(cli.Plan(suite.Name, cfg, suite.Names()))
		os.Exit(0)
	}

	if env.ShowBanner(cli.IsTerminal()) {
		cli.PrintBanner(os.Stdout, cli.Banner)
	}

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	logger.Info("starting benchmark suite",
		"suite", suite.Name,
		"duration", cfg.Duration,
		"warmup", cfg.Warmup)

	if err := run(ctx, os.Stdout, suite); err != nil {
		logger.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}
