// Package cli assembles the command tree: the CLI dispatcher component
// of the pipeline (spec §2), responsible for argument parsing and
// wiring a pipeline run with the right deployments fetcher variant.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/devmetrics/four-keys/config"
)

var (
	verbose bool
	store   *config.Store
)

var rootCmd = &cobra.Command{
	Use:          "four-keys",
	Short:        "Compute DORA delivery metrics for a configured project",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		s, err := config.Default()
		if err != nil {
			return err
		}
		store = s
		return nil
	},
}

// Execute runs the command tree and returns the process exit code per
// spec §6.1: 0 success, 1 user-facing failure, 2 argument parsing error.
// A SIGINT/SIGTERM cancels the context passed to every RunE, aborting any
// in-flight forge/PaaS request rather than rendering a partial result
// (spec §5 cancellation).
func Execute() int {
	logrus.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if _, ok := err.(argError); ok {
			return 2
		}
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug diagnostics on stderr")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return argError{err} })
}

// argError marks an error as an argument-parsing failure (exit code 2)
// rather than a user-facing runtime failure (exit code 1).
type argError struct{ err error }

func (e argError) Error() string { return e.err.Error() }
func (e argError) Unwrap() error { return e.err }
