// Command narctl drives a nal.Memory reasoner from the command line: feed
// it a fixture file of judgments/goals/questions, run it for a number of
// cycles, and observe what it derives. It stands in for the Narsese-shell
// driver a full NARS distribution ships, scoped to what this core actually
// implements (see the pkg/nal package doc).
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "narctl",
		Short: "Drive a non-axiomatic reasoner from the command line",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newStepCmd())
	root.AddCommand(newBenchCmd())
	return root
}

// newRunLogger builds the zap logger shared by every subcommand, tagged
// with a fresh run id so concurrent narctl invocations are distinguishable
// in aggregated logs.
func newRunLogger(verbose bool) (*zap.Logger, string, error) {
	runID := uuid.NewString()
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, "", err
	}
	return logger.With(zap.String("run_id", runID)), runID, nil
}
