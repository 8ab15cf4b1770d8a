package qalg

import "qsimlab/qsim"

// BuildBernsteinVazirani assembles the Bernstein-Vazirani circuit for a
// big-endian secret bitstring. A single run measures the secret exactly:
// phase kickback through the ancilla turns the final Hadamards into a
// readout of s.
func BuildBernsteinVazirani(secret string) (*qsim.Circuit, error) {
	if err := checkBitstring("secret", secret); err != nil {
		return nil, err
	}
	n := len(secret)
	if err := checkRegister(n + 1); err != nil {
		return nil, err
	}
	c := qsim.NewCircuit(n+1, n)
	ancilla := n

	// Ancilla in |->, inputs in uniform superposition.
	c.X(ancilla)
	c.H(ancilla)
	for q := 0; q < n; q++ {
		c.H(q)
	}

	// Inner-product oracle: CX from every secret-1 qubit onto the ancilla.
	for q := 0; q < n; q++ {
		if bit(secret, q) == '1' {
			c.CX(q, ancilla)
		}
	}

	for q := 0; q < n; q++ {
		c.H(q)
	}
	for q := 0; q < n; q++ {
		c.Measure(q, q)
	}
	return c, nil
}
