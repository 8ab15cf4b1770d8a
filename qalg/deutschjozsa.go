package qalg

import (
	"fmt"
	"strings"

	"qsimlab/qsim"
)

// OracleKind selects the black-box function probed by Deutsch-Jozsa.
type OracleKind uint8

const (
	// OracleConstantZero is f(x) = 0.
	OracleConstantZero OracleKind = iota
	// OracleConstantOne is f(x) = 1.
	OracleConstantOne
	// OracleBalancedFirst is f(x) = x_0.
	OracleBalancedFirst
	// OracleBalancedParity is f(x) = x_0 XOR ... XOR x_{n-1}.
	OracleBalancedParity
)

var oracleNames = map[OracleKind]string{
	OracleConstantZero:   "constant_zero",
	OracleConstantOne:    "constant_one",
	OracleBalancedFirst:  "balanced_first",
	OracleBalancedParity: "balanced_parity",
}

func (k OracleKind) String() string {
	if name, ok := oracleNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OracleKind(%d)", k)
}

// IsConstant reports whether the oracle computes a constant function.
func (k OracleKind) IsConstant() bool {
	return k == OracleConstantZero || k == OracleConstantOne
}

// ParseOracleKind maps an oracle name to its kind.
func ParseOracleKind(name string) (OracleKind, error) {
	for k, n := range oracleNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown oracle %q (want one of constant_zero, constant_one, balanced_first, balanced_parity)", name)
}

// BuildDeutschJozsa assembles the Deutsch-Jozsa circuit on n input qubits
// plus one ancilla. Only the input register is measured.
func BuildDeutschJozsa(n int, oracle OracleKind) (*qsim.Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("need at least one input qubit, got %d", n)
	}
	if err := checkRegister(n + 1); err != nil {
		return nil, err
	}
	if _, ok := oracleNames[oracle]; !ok {
		return nil, fmt.Errorf("unknown oracle kind %d", oracle)
	}

	c := qsim.NewCircuit(n+1, n)
	ancilla := n

	c.X(ancilla)
	for q := 0; q <= n; q++ {
		c.H(q)
	}

	switch oracle {
	case OracleConstantZero:
		// f(x) = 0 touches nothing
	case OracleConstantOne:
		c.X(ancilla)
	case OracleBalancedFirst:
		c.CX(0, ancilla)
	case OracleBalancedParity:
		for q := 0; q < n; q++ {
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

// ClassifyDeutschJozsa labels the sampled counts "constant" when the
// all-zeros outcome dominates and "balanced" otherwise. The 80% threshold
// tolerates sampling noise on an ideal simulator where the split is exact.
func ClassifyDeutschJozsa(counts qsim.Counts, n int) string {
	total := counts.Total()
	if total == 0 {
		return "unknown"
	}
	zeros := counts[strings.Repeat("0", n)]
	if float64(zeros) > 0.8*float64(total) {
		return "constant"
	}
	return "balanced"
}
