package qsim

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQASMExportBellPair(t *testing.T) {
	c := NewCircuit(2, 2)
	c.H(0)
	c.CX(0, 1)
	c.MeasureAll()

	qasm, err := c.QASM()
	require.NoError(t, err)

	for _, want := range []string{
		"OPENQASM 2.0;",
		"qreg q[2];",
		"creg c[2];",
		"h q[0];",
		"cx q[0], q[1];",
		"measure q[0] -> c[0];",
		"measure q[1] -> c[1];",
	} {
		assert.Contains(t, qasm, want)
	}
}

func TestQASMExportParameterizedGates(t *testing.T) {
	c := NewCircuit(2, 0)
	c.RY(0, math.Pi/4)
	c.Phase(1, math.Pi/2)
	c.CPhase(0, 1, 3*math.Pi/4)

	qasm, err := c.QASM()
	require.NoError(t, err)
	assert.Contains(t, qasm, "ry(pi/4) q[0];")
	assert.Contains(t, qasm, "u1(pi/2) q[1];")
	assert.Contains(t, qasm, "cu1(3*pi/4) q[0], q[1];")
}

func TestQASMExportRejectsWideControls(t *testing.T) {
	c := NewCircuit(4, 0)
	c.MCX([]int{0, 1, 2}, 3)
	_, err := c.QASM()
	assert.Error(t, err)

	c = NewCircuit(4, 0)
	c.MCZ([]int{0, 1, 2}, 3)
	_, err = c.QASM()
	assert.Error(t, err)
}

func TestQASMExportNarrowMultiControls(t *testing.T) {
	// One- and two-control MCX degrade to cx/ccx.
	c := NewCircuit(3, 0)
	c.MCX([]int{0}, 2)
	c.MCX([]int{0, 1}, 2)
	c.MCZ([]int{1}, 2)

	qasm, err := c.QASM()
	require.NoError(t, err)
	assert.Contains(t, qasm, "cx q[0], q[2];")
	assert.Contains(t, qasm, "ccx q[0], q[1], q[2];")
	assert.Contains(t, qasm, "cz q[1], q[2];")
}

func TestParseQASMBellPair(t *testing.T) {
	qasm := `OPENQASM 2.0;
include "qelib1.inc";

qreg q[2];
creg c[2];

h q[0];
cx q[0], q[1];
measure q[0] -> c[0];
measure q[1] -> c[1];
`
	c, err := ParseQASM(qasm)
	require.NoError(t, err)
	assert.Equal(t, 2, c.NumQubits)
	assert.Equal(t, 2, c.NumCbits)
	require.Len(t, c.Gates, 4)
	assert.Equal(t, KindH, c.Gates[0].Kind)
	assert.Equal(t, KindCX, c.Gates[1].Kind)
	assert.Equal(t, []int{0}, c.Gates[1].Controls)
	assert.Equal(t, 1, c.Gates[1].Target)

	// The parsed circuit runs and produces Bell statistics.
	counts, err := NewSeededEngine(5).Sample(c, 400)
	require.NoError(t, err)
	for state := range counts {
		assert.Contains(t, []string{"00", "11"}, state)
	}
}

func TestParseQASMFullGateSet(t *testing.T) {
	qasm := `OPENQASM 2.0;
qreg q[3];
creg c[3];
x q[0];
y q[1];
z q[2];
s q[0];
sdg q[0];
t q[1];
tdg q[1];
id q[2];
rx(pi/2) q[0];
ry(-pi/4) q[1];
rz(0.5) q[2];
u1(pi) q[0];
p(pi/8) q[1];
cz q[0], q[1];
swap q[1], q[2];
cu1(pi/2) q[0], q[2];
cp(pi/4) q[0], q[1];
ccx q[0], q[1], q[2];
barrier q[0], q[1], q[2];
measure q[2] -> c[2];
`
	c, err := ParseQASM(qasm)
	require.NoError(t, err)
	assert.NoError(t, c.Validate())

	// id and barrier produce no gates; everything else appends exactly one.
	require.Len(t, c.Gates, 18)
	assert.Equal(t, KindCCX, c.Gates[16].Kind)
	assert.Equal(t, KindMeasure, c.Gates[17].Kind)
	assert.InDelta(t, math.Pi/2, c.Gates[7].Theta, 1e-12)
}

func TestParseQASMErrors(t *testing.T) {
	tests := []struct {
		name string
		qasm string
	}{
		{"no qreg", "h q[0];"},
		{"qreg too wide", "qreg q[40];\nh q[0];"},
		{"creg wider than qreg", "qreg q[1];\ncreg c[2];"},
		{"qubit out of range", "qreg q[2];\nh q[5];"},
		{"unknown gate", "qreg q[2];\nfrobnicate q[0];"},
		{"bad angle", "qreg q[1];\nrx(tau) q[0];"},
		{"duplicate qubit", "qreg q[2];\ncx q[1], q[1];"},
		{"cbit out of range", "qreg q[2];\ncreg c[1];\nmeasure q[0] -> c[1];"},
		{"cbit measured twice", "qreg q[2];\ncreg c[2];\nmeasure q[0] -> c[0];\nmeasure q[1] -> c[0];"},
		{"garbage statement", "qreg q[2];\nthis is not qasm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQASM(tt.qasm)
			assert.Error(t, err)
		})
	}
}

func TestQASMRoundTrip(t *testing.T) {
	c := NewCircuit(3, 3)
	c.H(0)
	c.T(1)
	c.RX(2, math.Pi/2)
	c.CX(0, 1)
	c.CPhase(1, 2, math.Pi/4)
	c.Swap(0, 2)
	c.CCX(0, 1, 2)
	c.MeasureAll()

	qasm, err := c.QASM()
	require.NoError(t, err)

	parsed, err := ParseQASM(qasm)
	require.NoError(t, err)
	require.Len(t, parsed.Gates, len(c.Gates))
	for i := range c.Gates {
		assert.Equal(t, c.Gates[i].Kind, parsed.Gates[i].Kind, "gate %d kind", i)
		assert.Equal(t, c.Gates[i].Target, parsed.Gates[i].Target, "gate %d target", i)
		assert.InDelta(t, c.Gates[i].Theta, parsed.Gates[i].Theta, 1e-10, "gate %d theta", i)
	}

	// Exporting the parsed circuit again is stable.
	qasm2, err := parsed.QASM()
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(qasm), strings.TrimSpace(qasm2))
}
