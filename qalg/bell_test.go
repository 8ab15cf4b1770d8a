package qalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsimlab/qsim"
)

func TestBellPairCorrelation(t *testing.T) {
	counts, err := qsim.NewSeededEngine(71).Sample(BuildBellPair(), 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, counts.Total())
	for state := range counts {
		assert.Contains(t, []string{"00", "11"}, state)
	}
	assert.InDelta(t, 500, counts["00"], 120)
}

func TestProductSuperpositionIsUncorrelated(t *testing.T) {
	counts, err := qsim.NewSeededEngine(73).Sample(BuildProductSuperposition(), 2000)
	require.NoError(t, err)
	for _, state := range []string{"00", "01", "10", "11"} {
		assert.InDelta(t, 500, counts[state], 150, "state %s", state)
	}
}

func TestCoinIsRoughlyFair(t *testing.T) {
	c, err := BuildCoin(1)
	require.NoError(t, err)
	counts, err := qsim.NewSeededEngine(79).Sample(c, 2000)
	require.NoError(t, err)
	assert.InDelta(t, 1000, counts["0"], 150)
	assert.InDelta(t, 1000, counts["1"], 150)

	// Two qubits give a four-sided die.
	c, err = BuildCoin(2)
	require.NoError(t, err)
	counts, err = qsim.NewSeededEngine(83).Sample(c, 400)
	require.NoError(t, err)
	assert.Len(t, counts, 4)
}

func TestCoinRejectsZeroQubits(t *testing.T) {
	_, err := BuildCoin(0)
	assert.Error(t, err)
}
