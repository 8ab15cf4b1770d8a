package qsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOperator(t *testing.T, terms ...PauliTerm) PauliOperator {
	t.Helper()
	op, err := NewPauliOperator(terms)
	require.NoError(t, err)
	return op
}

func TestNewPauliOperatorValidation(t *testing.T) {
	_, err := NewPauliOperator(nil)
	assert.Error(t, err)

	_, err = NewPauliOperator([]PauliTerm{{Pauli: "XZ", Coeff: 1}, {Pauli: "X", Coeff: 1}})
	assert.Error(t, err, "mismatched widths")

	_, err = NewPauliOperator([]PauliTerm{{Pauli: "XQ", Coeff: 1}})
	assert.Error(t, err, "invalid operator letter")

	op, err := NewPauliOperator([]PauliTerm{{Pauli: "IXYZ", Coeff: 0.5}})
	require.NoError(t, err)
	assert.Equal(t, 4, op.NumQubits())
}

func TestExpectationZOnComputationalBasis(t *testing.T) {
	op := mustOperator(t, PauliTerm{Pauli: "Z", Coeff: 1})

	s := NewStateVector(1)
	val, err := op.Expectation(s)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, val, 1e-12, "<0|Z|0> = 1")

	s.applyX(0)
	val, err = op.Expectation(s)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, val, 1e-12, "<1|Z|1> = -1")
}

func TestExpectationXOnHadamardBasis(t *testing.T) {
	op := mustOperator(t, PauliTerm{Pauli: "X", Coeff: 1})

	s := NewStateVector(1)
	s.applyH(0)
	val, err := op.Expectation(s)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, val, 1e-12, "<+|X|+> = 1")

	s = NewStateVector(1)
	s.applyX(0)
	s.applyH(0)
	val, err = op.Expectation(s)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, val, 1e-12, "<-|X|-> = -1")
}

func TestExpectationYEigenstates(t *testing.T) {
	op := mustOperator(t, PauliTerm{Pauli: "Y", Coeff: 1})

	// |+i> = H then S applied to |0>
	s := NewStateVector(1)
	s.applyH(0)
	s.applyS(0, false)
	val, err := op.Expectation(s)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, val, 1e-12)

	// |-i> via Sdg
	s = NewStateVector(1)
	s.applyH(0)
	s.applyS(0, true)
	val, err = op.Expectation(s)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, val, 1e-12)
}

func TestExpectationBigEndianStringConvention(t *testing.T) {
	// "IZ" acts with Z on qubit 0. Flip qubit 0 only: expectation is -1.
	s := NewStateVector(2)
	s.applyX(0)

	op := mustOperator(t, PauliTerm{Pauli: "IZ", Coeff: 1})
	val, err := op.Expectation(s)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, val, 1e-12)

	// "ZI" acts on qubit 1, which is still |0>.
	op = mustOperator(t, PauliTerm{Pauli: "ZI", Coeff: 1})
	val, err = op.Expectation(s)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, val, 1e-12)
}

func TestExpectationWeightedSum(t *testing.T) {
	// On the Bell state, <ZZ> = <XX> = 1 and <IZ> = <ZI> = 0.
	s := NewStateVector(2)
	s.applyH(0)
	s.applyCX(0, 1)

	op := mustOperator(t,
		PauliTerm{Pauli: "ZZ", Coeff: 0.5},
		PauliTerm{Pauli: "XX", Coeff: 0.25},
		PauliTerm{Pauli: "IZ", Coeff: 3},
		PauliTerm{Pauli: "ZI", Coeff: -3},
	)
	val, err := op.Expectation(s)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, val, 1e-12)
}

func TestExpectationWidthMismatch(t *testing.T) {
	op := mustOperator(t, PauliTerm{Pauli: "ZZ", Coeff: 1})
	_, err := op.Expectation(NewStateVector(3))
	assert.Error(t, err)
}
