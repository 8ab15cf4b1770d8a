package qalg

import (
	"math"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsimlab/qsim"
)

func TestQFTRoundTripRecoversBasisState(t *testing.T) {
	for _, initial := range []string{"0", "1", "101", "0110", "11011"} {
		c, err := BuildQFTRoundTrip(initial)
		require.NoError(t, err)

		counts, err := qsim.NewSeededEngine(31).Sample(c, 256)
		require.NoError(t, err)
		assert.Equal(t, qsim.Counts{initial: 256}, counts, "initial %s", initial)
	}
}

func TestQFTOnUniformSuperpositionConcentrates(t *testing.T) {
	// The uniform superposition is the Fourier image of |0...0>, so the
	// forward transform maps it back there.
	c, err := BuildQFTSuperposition(3)
	require.NoError(t, err)

	counts, err := qsim.NewSeededEngine(37).Sample(c, 256)
	require.NoError(t, err)
	assert.Equal(t, qsim.Counts{"000": 256}, counts)
}

func TestQFTAmplitudesMatchDFT(t *testing.T) {
	// The QFT of |j> must agree with the inverse discrete Fourier transform
	// of the j-th unit vector, rescaled by sqrt(N).
	const n = 4
	N := 1 << n

	for _, j := range []int{0, 1, 5, 11, 15} {
		c := qsim.NewCircuit(n, 0)
		for q := 0; q < n; q++ {
			if j&(1<<q) != 0 {
				c.X(q)
			}
		}
		ApplyQFT(c, n)

		state, err := qsim.NewEngine().Evolve(c)
		require.NoError(t, err)

		unit := make([]complex128, N)
		unit[j] = 1
		want := fft.IFFT(unit)
		scale := complex(math.Sqrt(float64(N)), 0)
		for k := 0; k < N; k++ {
			expected := want[k] * scale
			assert.InDelta(t, real(expected), real(state.Amplitudes[k]), 1e-9, "j = %d, k = %d", j, k)
			assert.InDelta(t, imag(expected), imag(state.Amplitudes[k]), 1e-9, "j = %d, k = %d", j, k)
		}
	}
}

func TestInverseQFTIsExactInverse(t *testing.T) {
	// QFT then inverse QFT on an arbitrary entangled state is the identity.
	c := qsim.NewCircuit(3, 0)
	c.H(0)
	c.CX(0, 1)
	c.T(2)
	c.RY(2, 0.37)
	before, err := qsim.NewEngine().Evolve(c)
	require.NoError(t, err)

	ApplyQFT(c, 3)
	ApplyInverseQFT(c, 3)
	after, err := qsim.NewEngine().Evolve(c)
	require.NoError(t, err)

	for k := range before.Amplitudes {
		assert.InDelta(t, real(before.Amplitudes[k]), real(after.Amplitudes[k]), 1e-10)
		assert.InDelta(t, imag(before.Amplitudes[k]), imag(after.Amplitudes[k]), 1e-10)
	}
}

func TestQFTBuilderErrors(t *testing.T) {
	_, err := BuildQFTRoundTrip("")
	assert.Error(t, err)
	_, err = BuildQFTRoundTrip("01a")
	assert.Error(t, err)
	_, err = BuildQFTSuperposition(0)
	assert.Error(t, err)
}
