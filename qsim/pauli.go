package qsim

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// PauliTerm is one weighted Pauli string. The string is read big-endian
// like measurement bitstrings: the leftmost character acts on qubit n-1.
// "IZ" on two qubits is Z on qubit 0.
type PauliTerm struct {
	Pauli string
	Coeff float64
}

// PauliOperator is a real-weighted sum of Pauli strings over a fixed
// register width.
type PauliOperator []PauliTerm

// NewPauliOperator validates each string and assembles the operator. All
// strings must share one length and use only I, X, Y, Z.
func NewPauliOperator(terms []PauliTerm) (PauliOperator, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("operator needs at least one term")
	}
	width := len(terms[0].Pauli)
	for _, t := range terms {
		if len(t.Pauli) != width {
			return nil, fmt.Errorf("pauli string %q: want length %d", t.Pauli, width)
		}
		if i := strings.IndexFunc(t.Pauli, func(r rune) bool {
			return r != 'I' && r != 'X' && r != 'Y' && r != 'Z'
		}); i >= 0 {
			return nil, fmt.Errorf("pauli string %q: invalid operator %q", t.Pauli, t.Pauli[i])
		}
	}
	return PauliOperator(terms), nil
}

// NumQubits is the register width the operator acts on.
func (op PauliOperator) NumQubits() int {
	if len(op) == 0 {
		return 0
	}
	return len(op[0].Pauli)
}

// Expectation computes sum_k coeff_k * <psi|P_k|psi> and returns the real
// part. The imaginary part of each term vanishes for Hermitian P up to
// floating-point error.
func (op PauliOperator) Expectation(s *StateVector) (float64, error) {
	if op.NumQubits() != s.NumQubits {
		return 0, fmt.Errorf("operator acts on %d qubits, state has %d", op.NumQubits(), s.NumQubits)
	}
	total := 0.0
	for _, t := range op {
		total += t.Coeff * real(pauliBracket(s, t.Pauli))
	}
	return total, nil
}

// pauliBracket computes <psi|P|psi> for a single Pauli string. P maps basis
// state |i> to phase * |i XOR flipMask|: X and Y flip their bit, Y carries
// i*(-1)^bit and Z carries (-1)^bit.
func pauliBracket(s *StateVector, pauli string) Complex {
	n := s.NumQubits
	flipMask := 0
	yMask := 0
	zMask := 0
	for q := 0; q < n; q++ {
		switch pauli[n-1-q] {
		case 'X':
			flipMask |= 1 << q
		case 'Y':
			flipMask |= 1 << q
			yMask |= 1 << q
		case 'Z':
			zMask |= 1 << q
		}
	}

	// Each Y contributes a constant factor of i on top of its (-1)^bit.
	yFactor := Complex(1)
	switch popcount(yMask) % 4 {
	case 1:
		yFactor = 1i
	case 2:
		yFactor = -1
	case 3:
		yFactor = -1i
	}

	var bracket Complex
	for i, amp := range s.Amplitudes {
		if amp == 0 {
			continue
		}
		j := i ^ flipMask
		phase := yFactor
		if popcount(i&(zMask|yMask))%2 == 1 {
			phase = -phase
		}
		bracket += cmplx.Conj(s.Amplitudes[j]) * phase * amp
	}
	return bracket
}

func popcount(x int) int {
	count := 0
	for x > 0 {
		count += x & 1
		x >>= 1
	}
	return count
}
