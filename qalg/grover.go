package qalg

import (
	"math"

	"qsimlab/qsim"
)

// GroverIterations returns the near-optimal iteration count for an n-qubit
// search space: floor(pi/4 * sqrt(2^n)), never below 1.
func GroverIterations(n int) int {
	iters := int(math.Pi / 4 * math.Sqrt(math.Exp2(float64(n))))
	if iters < 1 {
		iters = 1
	}
	return iters
}

// BuildGrover assembles Grover's search for the given big-endian target
// bitstring. iterations <= 0 selects the near-optimal count.
func BuildGrover(target string, iterations int) (*qsim.Circuit, error) {
	if err := checkBitstring("target", target); err != nil {
		return nil, err
	}
	n := len(target)
	if err := checkRegister(n); err != nil {
		return nil, err
	}
	if iterations <= 0 {
		iterations = GroverIterations(n)
	}

	c := qsim.NewCircuit(n, n)
	for q := 0; q < n; q++ {
		c.H(q)
	}
	for i := 0; i < iterations; i++ {
		markTarget(c, target)
		diffuse(c, n)
	}
	c.MeasureAll()
	return c, nil
}

// markTarget is the phase-flip oracle: conjugate a multi-controlled Z with
// X gates on the qubits where the target bit is 0, so only the target basis
// state picks up the minus sign.
func markTarget(c *qsim.Circuit, target string) {
	n := len(target)
	for q := 0; q < n; q++ {
		if bit(target, q) == '0' {
			c.X(q)
		}
	}
	allOnesPhaseFlip(c, n)
	for q := 0; q < n; q++ {
		if bit(target, q) == '0' {
			c.X(q)
		}
	}
}

// diffuse is the inversion-about-average operator 2|s><s| - I.
func diffuse(c *qsim.Circuit, n int) {
	for q := 0; q < n; q++ {
		c.H(q)
	}
	for q := 0; q < n; q++ {
		c.X(q)
	}
	allOnesPhaseFlip(c, n)
	for q := 0; q < n; q++ {
		c.X(q)
	}
	for q := 0; q < n; q++ {
		c.H(q)
	}
}

// allOnesPhaseFlip negates the |1...1> amplitude. For wider registers the
// multi-controlled Z is spelled as H-MCX-H on the last qubit.
func allOnesPhaseFlip(c *qsim.Circuit, n int) {
	switch n {
	case 1:
		c.Z(0)
	case 2:
		c.CZ(0, 1)
	default:
		controls := make([]int, n-1)
		for q := 0; q < n-1; q++ {
			controls[q] = q
		}
		c.H(n - 1)
		c.MCX(controls, n-1)
		c.H(n - 1)
	}
}
