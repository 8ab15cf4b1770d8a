package qalg

import (
	"fmt"
	"math"
	"strconv"

	"qsimlab/qsim"
)

// BuildPhaseEstimation assembles quantum phase estimation for a phase gate
// U|1> = e^(2*pi*i*phase)|1> with the given number of counting qubits. The
// eigenstate qubit sits above the counting register; only the counting
// register is measured. Precision is 1/2^counting.
func BuildPhaseEstimation(counting int, phase float64) (*qsim.Circuit, error) {
	if counting < 1 {
		return nil, fmt.Errorf("need at least one counting qubit, got %d", counting)
	}
	if phase < 0 || phase > 1 {
		return nil, fmt.Errorf("phase %v outside [0, 1]", phase)
	}
	if err := checkRegister(counting + 1); err != nil {
		return nil, err
	}

	c := qsim.NewCircuit(counting+1, counting)
	target := counting

	c.X(target)
	for q := 0; q < counting; q++ {
		c.H(q)
	}

	// Controlled U^(2^k) from counting qubit k; U is a pure phase, so the
	// power collapses into a single controlled-phase rotation.
	for k := 0; k < counting; k++ {
		angle := 2 * math.Pi * phase * math.Exp2(float64(k))
		c.CPhase(k, target, angle)
	}

	ApplyInverseQFT(c, counting)

	for q := 0; q < counting; q++ {
		c.Measure(q, q)
	}
	return c, nil
}

// DecodePhase converts a measured counting-register bitstring back to a
// phase estimate in [0, 1): the string read as an integer over 2^width.
func DecodePhase(bitstring string) (float64, error) {
	if err := checkBitstring("measurement", bitstring); err != nil {
		return 0, err
	}
	value, err := strconv.ParseUint(bitstring, 2, 63)
	if err != nil {
		return 0, fmt.Errorf("measurement %q: %w", bitstring, err)
	}
	return float64(value) / math.Exp2(float64(len(bitstring))), nil
}
