package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/nal-go/internal/reasonerpool"
	"github.com/gitrdm/nal-go/pkg/nal"
)

func newBenchCmd() *cobra.Command {
	var fixtures []string
	var cycles int
	var workers int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run several fixture files concurrently through independent reasoners and report timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(fixtures) == 0 {
				return fmt.Errorf("bench requires at least one --fixture")
			}
			pool := reasonerpool.New(workers)
			ctx := context.Background()

			for _, path := range fixtures {
				path := path
				job := reasonerpool.Job{
					Name:   path,
					Config: nal.DefaultConfig(),
					Run: func(m *nal.Memory) reasonerpool.JobResult {
						var emitted []*nal.Task
						m.SetOutput(collectOutput{into: &emitted})
						if _, err := loadFixtures(m, path); err != nil {
							return reasonerpool.JobResult{Err: err}
						}
						for i := 0; i < cycles; i++ {
							m.Cycle()
						}
						return reasonerpool.JobResult{Cycles: cycles, Emitted: emitted}
					},
				}
				if err := pool.Submit(ctx, job); err != nil {
					return err
				}
			}

			results := pool.Shutdown()
			for _, r := range results {
				if r.Err != nil {
					fmt.Printf("%s: error: %v (%s)\n", r.Name, r.Err, r.Duration)
					continue
				}
				fmt.Printf("%s: %d cycles, %d emitted tasks, %s\n", r.Name, r.Cycles, len(r.Emitted), r.Duration)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&fixtures, "fixture", nil, "fixture file to run (repeatable)")
	cmd.Flags().IntVar(&cycles, "cycles", 100, "cycles to run per fixture")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = NumCPU)")
	return cmd
}

// collectOutput implements nal.Output by appending every emitted task to
// a slice, for bench's summary counts.
type collectOutput struct {
	into *[]*nal.Task
}

func (o collectOutput) Emit(task *nal.Task) {
	*o.into = append(*o.into, task)
}
