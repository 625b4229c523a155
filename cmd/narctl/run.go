package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/nal-go/pkg/nal"
	"github.com/gitrdm/nal-go/pkg/nal/narconfig"
	"github.com/gitrdm/nal-go/pkg/nal/narlog"
)

func newRunCmd() *cobra.Command {
	var cycles int
	var verbose bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "run <fixture-file>",
		Short: "Load a fixture file and run the reasoner for a number of cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, runID, err := newRunLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg := nal.DefaultConfig()
			if configPath != "" {
				cfg, err = narconfig.Load(configPath)
				if err != nil {
					return err
				}
			}

			m := nal.NewMemory(cfg)
			m.SetOutput(writerOutput{w: os.Stdout})
			if verbose {
				m.SetRecorder(narlog.New(logger))
			}

			n, err := loadFixtures(m, args[0])
			if err != nil {
				return err
			}
			logger.Info("loaded fixture", zap.String("run_id", runID), zap.Int("sentences", n))

			for i := 0; i < cycles; i++ {
				m.Cycle()
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cycles, "cycles", 100, "number of attention-loop cycles to run")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable recorder logging of every cycle/task/concept event")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file of engine constants (defaults used if omitted)")
	return cmd
}
