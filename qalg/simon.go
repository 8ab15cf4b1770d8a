package qalg

import (
	"errors"
	"fmt"

	"qsimlab/qsim"
)

// BuildSimon assembles Simon's algorithm for a big-endian secret bitstring.
// Qubits 0..n-1 hold the input register, n..2n-1 the output register. The
// oracle copies the input to the output and then clears the output bits
// where the secret is 1, giving f(x) = x AND NOT s, which satisfies
// f(x) = f(x XOR s). Each measured input-register string y satisfies
// y . s = 0 (mod 2).
//
// Because the oracle drops the secret-1 coordinates entirely, those input
// qubits never entangle with the output register and always measure 0, so
// the sampled y vectors span only the secret-0 coordinates: rank at most
// n minus the secret's weight. Sampling alone therefore pins down the
// secret only when it has a single 1 bit; wider secrets leave
// SolveSimonSecret underdetermined no matter how many shots are taken.
func BuildSimon(secret string) (*qsim.Circuit, error) {
	if err := checkBitstring("secret", secret); err != nil {
		return nil, err
	}
	n := len(secret)
	if err := checkRegister(2 * n); err != nil {
		return nil, err
	}
	c := qsim.NewCircuit(2*n, n)

	for q := 0; q < n; q++ {
		c.H(q)
	}

	// Copy stage.
	for q := 0; q < n; q++ {
		c.CX(q, n+q)
	}
	// XOR stage: a second CX on the secret-1 positions cancels the copy.
	for q := 0; q < n; q++ {
		if bit(secret, q) == '1' {
			c.CX(q, n+q)
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

// ErrInsufficientMeasurements means the measurement set does not span
// enough of the orthogonal complement to pin down the secret.
var ErrInsufficientMeasurements = errors.New("not enough linearly independent measurements")

// SolveSimonSecret recovers the secret from measured input-register
// bitstrings by Gaussian elimination over GF(2). Every measurement y obeys
// y . s = 0; with rank n-1 the null space holds exactly one nonzero vector,
// which is the secret. Rank n means the only consistent secret is all
// zeros (the oracle was one-to-one).
func SolveSimonSecret(measurements []string, n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("register width must be >= 1, got %d", n)
	}

	// Deduplicate and convert to bitmasks; drop the useless all-zeros rows.
	seen := make(map[uint]bool)
	var rows []uint
	for _, m := range measurements {
		if len(m) != n {
			return "", fmt.Errorf("measurement %q is not %d bits wide", m, n)
		}
		if err := checkBitstring("measurement", m); err != nil {
			return "", err
		}
		mask := uint(0)
		for q := 0; q < n; q++ {
			if bit(m, q) == '1' {
				mask |= 1 << q
			}
		}
		if mask != 0 && !seen[mask] {
			seen[mask] = true
			rows = append(rows, mask)
		}
	}

	// Forward elimination: one pivot row per column.
	pivotRow := make([]uint, n) // pivotRow[col] == 0 means no pivot
	rank := 0
	for _, row := range rows {
		for col := n - 1; col >= 0; col-- {
			if row&(1<<col) == 0 {
				continue
			}
			if pivotRow[col] == 0 {
				pivotRow[col] = row
				rank++
				break
			}
			row ^= pivotRow[col]
		}
	}

	if rank == n {
		// Full rank: s = 0 is the only vector orthogonal to everything.
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = '0'
		}
		return string(buf), nil
	}
	if rank < n-1 {
		return "", fmt.Errorf("%w: have rank %d, need %d", ErrInsufficientMeasurements, rank, n-1)
	}

	// Exactly one free column: set it to 1 and back-substitute. For each
	// pivot column the parity constraint of its row fixes the secret bit.
	free := -1
	for col := 0; col < n; col++ {
		if pivotRow[col] == 0 {
			free = col
			break
		}
	}
	// Ascending column order: a pivot row's other bits all sit below its
	// pivot, so lower secret bits are settled before they are read.
	secret := uint(1) << free
	for col := 0; col < n; col++ {
		if pivotRow[col] == 0 {
			continue
		}
		if popcount(pivotRow[col]&secret)%2 == 1 {
			secret |= 1 << col
		}
	}

	buf := make([]byte, n)
	for q := 0; q < n; q++ {
		if secret&(1<<q) != 0 {
			buf[n-1-q] = '1'
		} else {
			buf[n-1-q] = '0'
		}
	}
	return string(buf), nil
}

func popcount(x uint) int {
	count := 0
	for x > 0 {
		count += int(x & 1)
		x >>= 1
	}
	return count
}
