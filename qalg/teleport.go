package qalg

import (
	"fmt"

	"qsimlab/qsim"
)

// StateKind selects the single-qubit state fed into the teleportation
// circuit.
type StateKind uint8

const (
	StateZero StateKind = iota
	StateOne
	StatePlus
	StateMinus
)

var stateNames = map[StateKind]string{
	StateZero:  "zero",
	StateOne:   "one",
	StatePlus:  "plus",
	StateMinus: "minus",
}

func (k StateKind) String() string {
	if name, ok := stateNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StateKind(%d)", k)
}

// ParseStateKind maps a state name to its kind.
func ParseStateKind(name string) (StateKind, error) {
	for k, n := range stateNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown state %q (want zero, one, plus, or minus)", name)
}

// BuildTeleportation assembles the standard 3-qubit teleportation circuit:
// the message state on qubit 0, a Bell pair on qubits 1 and 2, and a Bell
// measurement of qubits 0 and 1. No live classically-controlled correction
// is applied; qubit 2 is measured raw and CorrectedMarginal recovers the
// teleported distribution in post-processing.
func BuildTeleportation(state StateKind) (*qsim.Circuit, error) {
	if _, ok := stateNames[state]; !ok {
		return nil, fmt.Errorf("unknown state kind %d", state)
	}

	c := qsim.NewCircuit(3, 3)
	switch state {
	case StateZero:
		// |0> is the reset state
	case StateOne:
		c.X(0)
	case StatePlus:
		c.H(0)
	case StateMinus:
		c.X(0)
		c.H(0)
	}

	c.H(1)
	c.CX(1, 2)

	c.CX(0, 1)
	c.H(0)

	c.MeasureAll()
	return c, nil
}

// CorrectedMarginal aggregates raw 3-bit teleportation counts into the
// marginal distribution of the teleported qubit, emulating the corrective X
// classically: when the measured bit for qubit 0 is 1 the reported outcome
// of qubit 2 is flipped. Bitstrings read c2 c1 c0 left to right.
func CorrectedMarginal(counts qsim.Counts) (qsim.Counts, error) {
	marginal := qsim.Counts{"0": 0, "1": 0}
	for bitstring, count := range counts {
		if len(bitstring) != 3 {
			return nil, fmt.Errorf("bitstring %q is not 3 bits wide", bitstring)
		}
		out := bitstring[0]
		if bitstring[2] == '1' {
			if out == '0' {
				out = '1'
			} else {
				out = '0'
			}
		}
		marginal[string(out)] += count
	}
	return marginal, nil
}
