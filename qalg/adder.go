package qalg

import (
	"fmt"
	"strconv"

	"qsimlab/qsim"
)

// BuildAdder assembles a ripple-carry adder computing a + b over two
// bits-wide registers. Layout: qubits 0..bits-1 hold a, bits..2*bits-1 hold
// b (overwritten with the sum), 2*bits is the incoming carry and 2*bits+1
// the outgoing carry. The measured result is the sum register plus the
// carry-out as its top bit, bits+1 classical bits in total.
func BuildAdder(a, b, bits int) (*qsim.Circuit, error) {
	if bits < 1 {
		return nil, fmt.Errorf("need at least one bit per register, got %d", bits)
	}
	limit := 1 << bits
	if a < 0 || a >= limit {
		return nil, fmt.Errorf("a = %d outside [0, %d]", a, limit-1)
	}
	if b < 0 || b >= limit {
		return nil, fmt.Errorf("b = %d outside [0, %d]", b, limit-1)
	}
	if err := checkRegister(2*bits + 2); err != nil {
		return nil, err
	}

	c := qsim.NewCircuit(2*bits+2, bits+1)
	aQubit := func(i int) int { return i }
	bQubit := func(i int) int { return bits + i }
	carryIn := 2 * bits
	carryOut := 2*bits + 1

	for i := 0; i < bits; i++ {
		if a&(1<<i) != 0 {
			c.X(aQubit(i))
		}
		if b&(1<<i) != 0 {
			c.X(bQubit(i))
		}
	}

	// Forward pass propagates carries into the a register.
	for i := 0; i < bits; i++ {
		if i == 0 {
			majority(c, carryIn, bQubit(0), aQubit(0))
		} else {
			majority(c, aQubit(i-1), bQubit(i), aQubit(i))
		}
	}
	c.CX(aQubit(bits-1), carryOut)
	// Backward pass writes sum bits and uncomputes the carries.
	for i := bits - 1; i >= 0; i-- {
		if i == 0 {
			unmajority(c, carryIn, bQubit(0), aQubit(0))
		} else {
			unmajority(c, aQubit(i-1), bQubit(i), aQubit(i))
		}
	}

	for i := 0; i < bits; i++ {
		c.Measure(bQubit(i), i)
	}
	c.Measure(carryOut, bits)
	return c, nil
}

// majority leaves the carry bit on qubit c3 and the pairwise XORs behind
// for unmajority to consume.
func majority(c *qsim.Circuit, c1, c2, c3 int) {
	c.CX(c3, c2)
	c.CX(c3, c1)
	c.CCX(c1, c2, c3)
}

// unmajority undoes majority and deposits the sum bit on c2.
func unmajority(c *qsim.Circuit, c1, c2, c3 int) {
	c.CCX(c1, c2, c3)
	c.CX(c3, c1)
	c.CX(c1, c2)
}

// DecodeSum converts a measured adder bitstring back to the integer sum.
func DecodeSum(bitstring string) (int, error) {
	if err := checkBitstring("measurement", bitstring); err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(bitstring, 2, 63)
	if err != nil {
		return 0, fmt.Errorf("measurement %q: %w", bitstring, err)
	}
	return int(value), nil
}
