package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qsimlab/qsim"
)

var runShowState bool

var runCmd = &cobra.Command{
	Use:   "run <file.qasm>",
	Short: "sample an OpenQASM 2.0 circuit from a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		c, err := qsim.ParseQASM(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		logger.Info("parsed circuit",
			"qubits", c.NumQubits, "cbits", c.NumCbits,
			"gates", len(c.Gates), "depth", c.Depth())

		engine := newEngine()
		if runShowState {
			state, err := engine.Evolve(c)
			if err != nil {
				return err
			}
			fmt.Println("Qubit marginals before measurement:")
			for q, p := range state.QubitProbabilities() {
				fmt.Printf("  q[%d]  P(1) = %.4f  %s\n", q, p.Prob1, probabilityBar(p.Prob1, 24))
			}
			fmt.Println()
		}

		counts, err := engine.Sample(c, flagShots)
		if err != nil {
			return err
		}
		printCounts(counts)
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runShowState, "state", false, "also print per-qubit marginals of the final state")
	rootCmd.AddCommand(runCmd)
}
