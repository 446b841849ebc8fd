// Command sortbench compares the throughput of three sort libraries on a
// fixed 18-record fixture sorted by label.
//
// It prints one summary line per library, the fastest library, and a table
// of mean time, ops/sec and the change relative to the previous row.
//
// Usage:
//
//	sortbench                     # Run with defaults (5s per case)
//	sortbench -duration 30s       # Sample each case for 30 seconds
//	sortbench -list               # Show what would run and exit
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/drish/ben/pkg/bench"
	"github.com/drish/ben/pkg/cli"
	"github.com/drish/ben/pkg/fixture"
	"github.com/drish/ben/pkg/logging"
	"github.com/drish/ben/pkg/report"
	"github.com/drish/ben/pkg/sorters"
)

//go:embed README.md
var readmeMarkdown string

// sink keeps sort results reachable so the calls are not optimized away.
var sink []fixture.Record

// newSuite registers one case per sort variant, all sorting the same records.
func newSuite(runner bench.Runner, logger *slog.Logger, records []fixture.Record) *bench.Suite {
	suite := bench.NewSuite("sort-comparator", runner, logger)
	for _, v := range sorters.Variants[fixture.Record]() {
		suite.Add(v.Name, func() {
			sink = v.Sort(records, fixture.ByLabel)
		})
	}
	return suite
}

// run measures every case, then writes the summary lines followed by the
// comparison report to w. Nothing is written if a case fails.
func run(ctx context.Context, w io.Writer, suite *bench.Suite, lang language.Tag) error {
	results, err := suite.Run(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}

	if err := report.Build(results, lang).Render(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func main() {
	env, err := cli.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := bench.DefaultConfig()
	if err := bench.LoadEnv(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("sortbench", flag.ExitOnError)
	opts, err := cli.ParseFlags(fs, os.Args[1:], &cfg, &env, "sortbench -duration 10s -warmup 2s")
	if err != nil {
		os.Exit(2)
	}

	if opts.Help {
		cli.PrintDocs(os.Stdout, readmeMarkdown)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Printf("sortbench version %s\n", cli.Version)
		os.Exit(0)
	}

	logger := logging.New(os.Stderr, env.Level(), opts.JSONLogs)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	suite := newSuite(bench.NewSampler(cfg, logger), logger, fixture.Records())

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
		"cases", len(suite.Names()),
		"duration", cfg.Duration,
		"warmup", cfg.Warmup)

	if err := run(ctx, os.Stdout, suite, env.Language()); err != nil {
		logger.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}
