package qalg

import (
	"fmt"
	"math"

	"qsimlab/qsim"
)

// ApplyQFT appends the quantum Fourier transform on the first n qubits of c:
// |j> -> (1/sqrt(N)) sum_k e^(2*pi*i*j*k/N) |k>. Qubits are processed most
// significant first, so qubit j accumulates the binary fraction
// 0.x_j...x_0; the trailing swap network then puts the output in standard
// bit order.
func ApplyQFT(c *qsim.Circuit, n int) {
	for j := n - 1; j >= 0; j-- {
		c.H(j)
		for k := j - 1; k >= 0; k-- {
			angle := 2 * math.Pi / math.Exp2(float64(j-k+1))
			c.CPhase(k, j, angle)
		}
	}
	for i := 0; i < n/2; i++ {
		c.Swap(i, n-i-1)
	}
}

// ApplyInverseQFT appends the inverse transform, the exact mirror of
// ApplyQFT with negated rotation angles.
func ApplyInverseQFT(c *qsim.Circuit, n int) {
	for i := 0; i < n/2; i++ {
		c.Swap(i, n-i-1)
	}
	for j := 0; j < n; j++ {
		for k := 0; k < j; k++ {
			angle := -2 * math.Pi / math.Exp2(float64(j-k+1))
			c.CPhase(k, j, angle)
		}
		c.H(j)
	}
}

// BuildQFTRoundTrip prepares a basis state, runs QFT then inverse QFT, and
// measures. Sampling recovers the initial state with certainty.
func BuildQFTRoundTrip(initial string) (*qsim.Circuit, error) {
	if err := checkBitstring("initial state", initial); err != nil {
		return nil, err
	}
	n := len(initial)
	if err := checkRegister(n); err != nil {
		return nil, err
	}
	c := qsim.NewCircuit(n, n)
	for q := 0; q < n; q++ {
		if bit(initial, q) == '1' {
			c.X(q)
		}
	}
	ApplyQFT(c, n)
	ApplyInverseQFT(c, n)
	c.MeasureAll()
	return c, nil
}

// BuildQFTSuperposition runs the QFT on the uniform superposition.
func BuildQFTSuperposition(n int) (*qsim.Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("need at least one qubit, got %d", n)
	}
	if err := checkRegister(n); err != nil {
		return nil, err
	}
	c := qsim.NewCircuit(n, n)
	for q := 0; q < n; q++ {
		c.H(q)
	}
	ApplyQFT(c, n)
	c.MeasureAll()
	return c, nil
}
