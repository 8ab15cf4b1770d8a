package qalg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsimlab/qsim"
)

func TestDeutschJozsaClassification(t *testing.T) {
	tests := []struct {
		oracle OracleKind
		want   string
	}{
		{OracleConstantZero, "constant"},
		{OracleConstantOne, "constant"},
		{OracleBalancedFirst, "balanced"},
		{OracleBalancedParity, "balanced"},
	}
	for _, tt := range tests {
		t.Run(tt.oracle.String(), func(t *testing.T) {
			c, err := BuildDeutschJozsa(3, tt.oracle)
			require.NoError(t, err)

			counts, err := qsim.NewSeededEngine(9).Sample(c, 512)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ClassifyDeutschJozsa(counts, 3))

			// The ideal split is exact: constant oracles put every shot on
			// 000, balanced oracles none.
			zeros := counts[strings.Repeat("0", 3)]
			if tt.oracle.IsConstant() {
				assert.Equal(t, 512, zeros)
			} else {
				assert.Zero(t, zeros)
			}
		})
	}
}

func TestDeutschJozsaSingleQubit(t *testing.T) {
	c, err := BuildDeutschJozsa(1, OracleBalancedFirst)
	require.NoError(t, err)
	counts, err := qsim.NewSeededEngine(1).Sample(c, 100)
	require.NoError(t, err)
	assert.Equal(t, qsim.Counts{"1": 100}, counts)
}

func TestDeutschJozsaErrors(t *testing.T) {
	_, err := BuildDeutschJozsa(0, OracleConstantZero)
	assert.Error(t, err)
	_, err = BuildDeutschJozsa(2, OracleKind(99))
	assert.Error(t, err)
}

func TestClassifyEmptyCounts(t *testing.T) {
	assert.Equal(t, "unknown", ClassifyDeutschJozsa(qsim.Counts{}, 2))
}

func TestParseOracleKind(t *testing.T) {
	for kind, name := range map[OracleKind]string{
		OracleConstantZero:   "constant_zero",
		OracleConstantOne:    "constant_one",
		OracleBalancedFirst:  "balanced_first",
		OracleBalancedParity: "balanced_parity",
	} {
		got, err := ParseOracleKind(name)
		require.NoError(t, err)
		assert.Equal(t, kind, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseOracleKind("wat")
	assert.Error(t, err)
}
