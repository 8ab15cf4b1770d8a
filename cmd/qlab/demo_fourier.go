package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qsimlab/qalg"
)

var (
	qftN       int
	qftInitial string
)

var qftCmd = &cobra.Command{
	Use:   "qft",
	Short: "quantum Fourier transform round trip or superposition demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		if qftInitial != "" {
			c, err := qalg.BuildQFTRoundTrip(qftInitial)
			if err != nil {
				return err
			}
			counts, err := newEngine().Sample(c, flagShots)
			if err != nil {
				return err
			}

			fmt.Printf("QFT round trip from |%s> (depth %d)\n\n", qftInitial, c.Depth())
			printCounts(counts)
			fidelity := float64(counts[qftInitial]) / float64(counts.Total())
			fmt.Printf("\nFidelity with the initial state: %.4f\n", fidelity)
			return nil
		}

		c, err := qalg.BuildQFTSuperposition(qftN)
		if err != nil {
			return err
		}
		counts, err := newEngine().Sample(c, flagShots)
		if err != nil {
			return err
		}
		fmt.Printf("QFT of the uniform superposition on %d qubit(s)\n\n", qftN)
		printCounts(counts)
		return nil
	},
}

var (
	qpeCounting int
	qpePhase    float64
)

var qpeCmd = &cobra.Command{
	Use:   "phase-estimation",
	Short: "quantum phase estimation of a phase gate",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := qalg.BuildPhaseEstimation(qpeCounting, qpePhase)
		if err != nil {
			return err
		}
		counts, err := newEngine().Sample(c, flagShots)
		if err != nil {
			return err
		}

		fmt.Printf("Phase estimation of phi = %.6f with %d counting qubit(s)\n", qpePhase, qpeCounting)
		fmt.Printf("Grid precision 1/%d\n\n", 1<<qpeCounting)
		printCounts(counts)

		estimate, err := qalg.DecodePhase(counts.MostFrequent())
		if err != nil {
			return err
		}
		fmt.Printf("\nBest estimate: phi ~= %.6f (error %.6f)\n", estimate, abs(estimate-qpePhase))
		return nil
	},
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func init() {
	qftCmd.Flags().IntVar(&qftN, "n", 3, "number of qubits for the superposition demo")
	qftCmd.Flags().StringVar(&qftInitial, "initial", "", "basis state for the round-trip demo, e.g. 101")

	qpeCmd.Flags().IntVar(&qpeCounting, "counting", 4, "number of counting qubits")
	qpeCmd.Flags().Float64Var(&qpePhase, "phase", 0.375, "phase to estimate, in [0, 1]")

	rootCmd.AddCommand(qftCmd, qpeCmd)
}
