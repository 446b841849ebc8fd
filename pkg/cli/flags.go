package cli

import (
	"flag"

	"github.com/drish/ben/pkg/bench"
)

// Options are the non-timing flags shared by every command.
type Options struct {
	JSONLogs bool
	List     bool
	Help     bool
	Version  bool
}

// ParseFlags registers the shared flags on fs, using cfg's current values
// as the timing defaults, and parses args. Timing flags are written back to
// cfg, so flags override BEN_* variables already loaded into it.
func ParseFlags(fs *flag.FlagSet, args []string, cfg *bench.Config, env *Env, example string) (Options, error) {
	var opts Options

	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "sampling time per case")
	fs.DurationVar(&cfg.Warmup, "warmup", cfg.Warmup, "unmeasured run time before sampling each case")
	fs.IntVar(&cfg.MinSamples, "min-samples", cfg.MinSamples, "minimum samples per case")
	fs.BoolVar(&opts.JSONLogs, "json", false, "output logs in JSON format")
	fs.BoolVar(&opts.List, "list", false, "print the suite plan and exit")
	fs.BoolVar(&opts.Help, "help", false, "show full documentation")
	fs.BoolVar(&opts.Version, "version", false, "print the version and exit")
	fs.Usage = Usage(fs.Output(), fs, example, env, cfg)

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	return opts, nil
}
