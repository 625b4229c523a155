package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/nal-go/pkg/nal"
)

func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step <fixture-file>",
		Short: "Load a fixture file and single-step the reasoner, printing after each cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := nal.NewMemory(nal.DefaultConfig())
			m.SetOutput(writerOutput{w: os.Stdout})

			n, err := loadFixtures(m, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("loaded %d sentences\n", n)

			reader := bufio.NewReader(os.Stdin)
			fmt.Println("press enter to step one cycle, 'q' + enter to quit")
			for {
				line, _ := reader.ReadString('\n')
				if line == "q\n" {
					return nil
				}
				m.Cycle()
				fmt.Printf("-- clock=%d concepts=%d novel=%d\n", m.GetTime(), m.Concepts().Len(), m.NovelTasks().Len())
			}
		},
	}
	return cmd
}
