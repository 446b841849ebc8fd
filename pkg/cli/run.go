package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/xlab/treeprint"

	"github.com/drish/ben/pkg/bench"
)

// Plan renders what a suite would run as a tree:
//
//	sort-comparator
//	├── config
//	│   ├── duration: 5s
//	...
//	└── cases
//	    ├── gods-arraylist
//	    ...
func Plan(suite string, cfg bench.Config, cases []string) string {
	tree := treeprint.New()
	tree.SetValue(suite)

	conf := tree.AddBranch("config")
	conf.AddNode(fmt.Sprintf("duration: %s", cfg.Duration))
	conf.AddNode(fmt.Sprintf("warmup: %s", cfg.Warmup))
	conf.AddNode(fmt.Sprintf("min samples: %d", cfg.MinSamples))
	conf.AddNode(fmt.Sprintf("min sample time: %s", cfg.MinSampleTime))

	branch := tree.AddBranch("cases")
	for _, c := range cases {
		branch.AddNode(c)
	}

	return tree.String()
}

// SignalContext returns a context canceled on SIGINT or SIGTERM.
func SignalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received shutdown signal", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
