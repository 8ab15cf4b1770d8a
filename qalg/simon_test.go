package qalg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsimlab/qsim"
)

func dotMod2(a, b string) int {
	sum := 0
	for i := range a {
		if a[i] == '1' && b[i] == '1' {
			sum ^= 1
		}
	}
	return sum
}

func TestSimonMeasurementsAreOrthogonal(t *testing.T) {
	for _, secret := range []string{"11", "110", "1011"} {
		c, err := BuildSimon(secret)
		require.NoError(t, err)

		counts, err := qsim.NewSeededEngine(17).Sample(c, 512)
		require.NoError(t, err)
		assert.Equal(t, 512, counts.Total())
		for y := range counts {
			assert.Zero(t, dotMod2(y, secret), "y = %s, secret = %s", y, secret)
		}
	}
}

func TestSimonEndToEndRecovery(t *testing.T) {
	// A single-1-bit secret is the case the literal oracle can resolve by
	// sampling: the y vectors range over all of the secret-0 coordinates,
	// reaching the full rank n-1 the solver needs.
	secret := "010"
	c, err := BuildSimon(secret)
	require.NoError(t, err)

	// 512 shots over 4 equally likely orthogonal vectors: collecting all
	// of them is a near-certainty with a fixed seed.
	counts, err := qsim.NewSeededEngine(23).Sample(c, 512)
	require.NoError(t, err)

	var measurements []string
	for y := range counts {
		measurements = append(measurements, y)
	}
	got, err := SolveSimonSecret(measurements, len(secret))
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestSimonSamplingUnderdeterminesWideSecrets(t *testing.T) {
	// The oracle zeroes every secret-1 coordinate, so for a secret with two
	// or more 1 bits the sampled vectors can never reach rank n-1. The
	// solver must report the underdetermined system rather than guess.
	c, err := BuildSimon("110")
	require.NoError(t, err)

	counts, err := qsim.NewSeededEngine(23).Sample(c, 500)
	require.NoError(t, err)

	var measurements []string
	for y := range counts {
		measurements = append(measurements, y)
	}
	_, err = SolveSimonSecret(measurements, 3)
	assert.ErrorIs(t, err, ErrInsufficientMeasurements)
}

func TestSolveSimonSecretFromKnownVectors(t *testing.T) {
	// Orthogonal complement of s = 110 is {000, 001, 110, 111}.
	got, err := SolveSimonSecret([]string{"001", "110", "111", "000"}, 3)
	require.NoError(t, err)
	assert.Equal(t, "110", got)

	// s = 1011: y . s = 0 for 0011, 1001, 0100.
	got, err = SolveSimonSecret([]string{"0011", "1001", "0100"}, 4)
	require.NoError(t, err)
	assert.Equal(t, "1011", got)
}

func TestSolveSimonSecretFullRankMeansZero(t *testing.T) {
	// A one-to-one oracle (s = 0) yields measurements spanning everything.
	got, err := SolveSimonSecret([]string{"01", "10", "11"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "00", got)
}

func TestSolveSimonSecretInsufficientRank(t *testing.T) {
	_, err := SolveSimonSecret([]string{"000", "110"}, 3)
	assert.ErrorIs(t, err, ErrInsufficientMeasurements)

	_, err = SolveSimonSecret(nil, 2)
	assert.ErrorIs(t, err, ErrInsufficientMeasurements)
}

func TestSolveSimonSecretValidation(t *testing.T) {
	_, err := SolveSimonSecret([]string{"01"}, 3)
	assert.Error(t, err, "wrong width")
	_, err = SolveSimonSecret([]string{"0x1"}, 3)
	assert.Error(t, err, "bad characters")
	_, err = SolveSimonSecret(nil, 0)
	assert.Error(t, err, "bad width")
}

func TestBuildSimonRejectsBadSecret(t *testing.T) {
	_, err := BuildSimon("")
	assert.Error(t, err)
	_, err = BuildSimon("10a")
	assert.Error(t, err)

	// The doubled register must stay under the simulator's width cap.
	_, err = BuildSimon(strings.Repeat("1", 16))
	assert.Error(t, err)
}
