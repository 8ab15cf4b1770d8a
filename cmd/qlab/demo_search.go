package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"qsimlab/qalg"
)

var (
	groverN          int
	groverTarget     string
	groverIterations int
)

var groverCmd = &cobra.Command{
	Use:   "grover",
	Short: "Grover's search for a marked bitstring",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := groverTarget
		if target == "" {
			target = strings.Repeat("1", groverN)
		}
		iterations := groverIterations
		if iterations <= 0 {
			iterations = qalg.GroverIterations(len(target))
		}

		c, err := qalg.BuildGrover(target, iterations)
		if err != nil {
			return err
		}
		counts, err := newEngine().Sample(c, flagShots)
		if err != nil {
			return err
		}

		n := len(target)
		fmt.Printf("Grover search over %d states (%d qubits)\n", 1<<n, n)
		fmt.Printf("Target |%s>, %d iteration(s), circuit depth %d\n\n", target, iterations, c.Depth())
		printCounts(counts)

		prob := float64(counts[target]) / float64(counts.Total())
		fmt.Printf("\nSuccess probability: %.4f (random guessing: %.4f)\n", prob, 1/float64(int(1)<<n))
		return nil
	},
}

var (
	djN      int
	djOracle string
)

var djCmd = &cobra.Command{
	Use:   "deutsch-jozsa",
	Short: "Deutsch-Jozsa constant-vs-balanced test",
	RunE: func(cmd *cobra.Command, args []string) error {
		oracle, err := qalg.ParseOracleKind(djOracle)
		if err != nil {
			return err
		}
		c, err := qalg.BuildDeutschJozsa(djN, oracle)
		if err != nil {
			return err
		}
		counts, err := newEngine().Sample(c, flagShots)
		if err != nil {
			return err
		}

		fmt.Printf("Deutsch-Jozsa with %d input qubit(s), oracle %s\n\n", djN, oracle)
		printCounts(counts)
		fmt.Printf("\nClassified as: %s\n", qalg.ClassifyDeutschJozsa(counts, djN))
		return nil
	},
}

var bvSecret string

var bvCmd = &cobra.Command{
	Use:   "bernstein-vazirani",
	Short: "Bernstein-Vazirani secret string recovery in one query",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := qalg.BuildBernsteinVazirani(bvSecret)
		if err != nil {
			return err
		}
		counts, err := newEngine().Sample(c, flagShots)
		if err != nil {
			return err
		}

		fmt.Printf("Bernstein-Vazirani, secret %s\n\n", bvSecret)
		printCounts(counts)
		recovered := counts.MostFrequent()
		fmt.Printf("\nRecovered: %s", recovered)
		if recovered == bvSecret {
			fmt.Print(" (matches)")
		}
		fmt.Println()
		return nil
	},
}

var simonSecret string

var simonCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon's hidden-shift algorithm with classical post-processing",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := qalg.BuildSimon(simonSecret)
		if err != nil {
			return err
		}
		counts, err := newEngine().Sample(c, flagShots)
		if err != nil {
			return err
		}

		fmt.Printf("Simon's algorithm, secret %s\n", simonSecret)
		fmt.Printf("Measured y vectors all satisfy y . s = 0 (mod 2)\n\n")
		printCounts(counts)

		measurements := make([]string, 0, len(counts))
		for y := range counts {
			measurements = append(measurements, y)
		}
		recovered, err := qalg.SolveSimonSecret(measurements, len(simonSecret))
		if err != nil {
			logger.Warn("could not solve for the secret", "err", err)
			return nil
		}
		fmt.Printf("\nRecovered secret: %s", recovered)
		if recovered == simonSecret {
			fmt.Print(" (matches)")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	groverCmd.Flags().IntVar(&groverN, "n", 3, "number of qubits when --target is omitted")
	groverCmd.Flags().StringVar(&groverTarget, "target", "", "target bitstring, defaults to all ones")
	groverCmd.Flags().IntVar(&groverIterations, "iterations", 0, "Grover iterations, 0 picks the optimum")

	djCmd.Flags().IntVar(&djN, "n", 2, "number of input qubits")
	djCmd.Flags().StringVar(&djOracle, "oracle", "balanced_parity",
		"oracle: constant_zero, constant_one, balanced_first, or balanced_parity")

	bvCmd.Flags().StringVar(&bvSecret, "secret", "101", "secret bitstring")

	simonCmd.Flags().StringVar(&simonSecret, "secret", "100",
		"secret bitstring; the literal oracle only supports sampled recovery of single-1-bit secrets")

	rootCmd.AddCommand(groverCmd, djCmd, bvCmd, simonCmd)
}
