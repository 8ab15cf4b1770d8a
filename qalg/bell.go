package qalg

import (
	"fmt"

	"qsimlab/qsim"
)

// BuildBellPair prepares and measures the Bell state (|00> + |11>)/sqrt(2).
// Sampling only ever yields the two correlated outcomes.
func BuildBellPair() *qsim.Circuit {
	c := qsim.NewCircuit(2, 2)
	c.H(0)
	c.CX(0, 1)
	c.MeasureAll()
	return c
}

// BuildProductSuperposition prepares the unentangled H(x)H product state;
// all four outcomes appear with equal probability.
func BuildProductSuperposition() *qsim.Circuit {
	c := qsim.NewCircuit(2, 2)
	c.H(0)
	c.H(1)
	c.MeasureAll()
	return c
}

// BuildCoin puts numQubits qubits in uniform superposition, a fair
// 2^numQubits-sided die.
func BuildCoin(numQubits int) (*qsim.Circuit, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("need at least one qubit, got %d", numQubits)
	}
	if err := checkRegister(numQubits); err != nil {
		return nil, err
	}
	c := qsim.NewCircuit(numQubits, numQubits)
	for q := 0; q < numQubits; q++ {
		c.H(q)
	}
	c.MeasureAll()
	return c, nil
}
