// Package qalg builds circuit programs for the textbook quantum algorithms:
// Grover search, Deutsch-Jozsa, Bernstein-Vazirani, Simon, the quantum
// Fourier transform, phase estimation, a ripple-carry adder, and
// teleportation. Builders validate their problem parameters and return
// errors; the returned circuits run on a qsim.Engine.
package qalg

import (
	"fmt"
	"strings"

	"qsimlab/qsim"
)

// checkBitstring rejects empty strings and anything outside {0, 1}.
func checkBitstring(name, s string) error {
	if s == "" {
		return fmt.Errorf("%s must be a non-empty bitstring", name)
	}
	if i := strings.IndexFunc(s, func(r rune) bool { return r != '0' && r != '1' }); i >= 0 {
		return fmt.Errorf("%s %q contains %q; only 0 and 1 allowed", name, s, s[i])
	}
	return nil
}

// bit reads qubit q's value from a big-endian bitstring.
func bit(s string, q int) byte {
	return s[len(s)-1-q]
}

// checkRegister rejects problem sizes too wide for an in-memory statevector
// before any circuit is built.
func checkRegister(numQubits int) error {
	if numQubits > qsim.MaxQubits {
		return fmt.Errorf("circuit needs %d qubits, more than the simulator's %d-qubit limit", numQubits, qsim.MaxQubits)
	}
	return nil
}
