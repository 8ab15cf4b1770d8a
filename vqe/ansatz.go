// Package vqe estimates ground-state energies of weighted Pauli operators
// with the variational quantum eigensolver: a parameterized ansatz circuit,
// the statevector expectation evaluator, and a classical optimizer.
package vqe

import (
	"fmt"
	"math"
	"math/rand/v2"

	"qsimlab/qsim"
)

// Ansatz is the real-amplitudes variational form: alternating layers of RY
// rotations and a linear CX entangler, reps entangling blocks deep. All
// prepared states have real amplitudes.
type Ansatz struct {
	NumQubits int
	Reps      int
}

// NewRealAmplitudes builds the ansatz description. Parameters per layer
// equal the qubit count; reps+1 rotation layers in total.
func NewRealAmplitudes(numQubits, reps int) (*Ansatz, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("need at least one qubit, got %d", numQubits)
	}
	if numQubits > qsim.MaxQubits {
		return nil, fmt.Errorf("ansatz on %d qubits exceeds the simulator's %d-qubit limit", numQubits, qsim.MaxQubits)
	}
	if reps < 1 {
		return nil, fmt.Errorf("need at least one entangling block, got %d", reps)
	}
	return &Ansatz{NumQubits: numQubits, Reps: reps}, nil
}

// NumParameters is the length of the parameter vector Bind expects.
func (a *Ansatz) NumParameters() int {
	return a.NumQubits * (a.Reps + 1)
}

// Bind produces the concrete circuit for one parameter assignment.
func (a *Ansatz) Bind(params []float64) (*qsim.Circuit, error) {
	if len(params) != a.NumParameters() {
		return nil, fmt.Errorf("got %d parameters, ansatz takes %d", len(params), a.NumParameters())
	}
	c := qsim.NewCircuit(a.NumQubits, 0)
	idx := 0
	for q := 0; q < a.NumQubits; q++ {
		c.RY(q, params[idx])
		idx++
	}
	for rep := 0; rep < a.Reps; rep++ {
		for q := 0; q < a.NumQubits-1; q++ {
			c.CX(q, q+1)
		}
		for q := 0; q < a.NumQubits; q++ {
			c.RY(q, params[idx])
			idx++
		}
	}
	return c, nil
}

// InitialPoint draws a reproducible random parameter vector, uniform over
// [-pi, pi) per component.
func InitialPoint(seed uint64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	params := make([]float64, n)
	for i := range params {
		params[i] = (rng.Float64()*2 - 1) * math.Pi
	}
	return params
}
