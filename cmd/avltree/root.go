package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/avltree/avl"
	"github.com/katalvlaran/avltree/hooks"
)

// app carries the state shared by every subcommand for one invocation.
type app struct {
	logLevel  string
	logFormat string
	metrics   bool

	logger   *slog.Logger
	registry *prometheus.Registry
	counters *hooks.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "avltree",
		Short:         "Build, inspect and script AVL trees",
		Long:          "avltree inserts and deletes integer values in a self-balancing AVL tree\nand prints the resulting order, size, height and shape.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.metrics {
				return nil
			}
			return writeMetrics(cmd.OutOrStdout(), a.registry)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVar(&a.metrics, "metrics", false, "print Prometheus counters for the run")

	root.AddCommand(newBuildCmd(a), newRunCmd(a), newInitCmd())

	return root
}

// setup configures logging and metrics from the persistent flags.
func (a *app) setup(cmd *cobra.Command) error {
	logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.logger = logger

	if a.metrics {
		a.registry = prometheus.NewRegistry()
		if a.counters, err = hooks.NewMetrics(a.registry, "avltree"); err != nil {
			return err
		}
	}

	return nil
}

// treeHooks returns the hooks every command attaches to its tree: debug
// logging always, metrics when requested.
func (a *app) treeHooks() avl.Hooks[int] {
	hs := []avl.Hooks[int]{hooks.Logger[int](a.logger, slog.LevelDebug)}
	if a.counters != nil {
		hs = append(hs, hooks.MetricsHooks[int](a.counters))
	}

	return hooks.Chain(hs...)
}

// parseLevel maps a flag value to a slog level.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", s)
	}
}
