package qsim

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

// Counts maps big-endian result bitstrings to shot counts. The values sum
// to the number of shots requested from Sample.
type Counts map[string]int

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// MostFrequent returns the bitstring with the highest count. Ties resolve
// to the lexicographically smaller string so the result is deterministic.
func (c Counts) MostFrequent() string {
	best := ""
	bestCount := -1
	for state, n := range c {
		if n > bestCount || (n == bestCount && state < best) {
			best = state
			bestCount = n
		}
	}
	return best
}

const (
	// normTolerance bounds the drift of the state norm after evolution;
	// anything worse indicates a gate application bug.
	normTolerance = 1e-9
	// probEpsilon clamps floating-point dust to exactly zero before sampling.
	probEpsilon = 1e-10
)

var ErrBadShots = errors.New("shots must be >= 1")

// Engine runs circuit programs against fresh state vectors. Each call owns
// its state; the only mutable field is the sampling PRNG, so concurrent use
// requires one Engine per goroutine.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine with an arbitrarily seeded sampler.
func NewEngine() *Engine {
	return &Engine{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededEngine returns an engine whose sampling sequence is reproducible.
func NewSeededEngine(seed uint64) *Engine {
	return &Engine{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Evolve applies every non-measurement gate of c in program order to a
// fresh |0...0> state and returns the resulting state vector. Deterministic:
// no randomness is involved until sampling.
func (e *Engine) Evolve(c *Circuit) (*StateVector, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circuit: %w", err)
	}
	state := NewStateVector(c.NumQubits)
	for _, g := range c.Gates {
		applyGate(state, g)
	}
	if norm := state.Norm(); math.Abs(norm-1) > normTolerance {
		return nil, fmt.Errorf("state norm %.12f after evolution; gate application is broken", norm)
	}
	return state, nil
}

// applyGate dispatches one gate onto the state. The switch is exhaustive
// over GateKind; measurement is a no-op here because sampling happens on
// the final distribution.
func applyGate(s *StateVector, g Gate) {
	switch g.Kind {
	case KindH:
		s.applyH(g.Target)
	case KindX:
		s.applyX(g.Target)
	case KindY:
		s.applyY(g.Target)
	case KindZ:
		s.applyZ(g.Target)
	case KindS:
		s.applyS(g.Target, false)
	case KindSdg:
		s.applyS(g.Target, true)
	case KindT:
		s.applyT(g.Target, false)
	case KindTdg:
		s.applyT(g.Target, true)
	case KindRX:
		s.applyRX(g.Target, g.Theta)
	case KindRY:
		s.applyRY(g.Target, g.Theta)
	case KindRZ:
		s.applyRZ(g.Target, g.Theta)
	case KindPhase:
		s.applyPhase(g.Target, g.Theta)
	case KindCX:
		s.applyCX(g.Controls[0], g.Target)
	case KindCZ:
		s.applyCZ(g.Controls[0], g.Target)
	case KindCPhase:
		s.applyCPhase(g.Controls[0], g.Target, g.Theta)
	case KindSwap:
		s.applySwap(g.Controls[0], g.Target)
	case KindCCX:
		s.applyMCX(g.Controls, g.Target)
	case KindMCX:
		s.applyMCX(g.Controls, g.Target)
	case KindMCZ:
		s.applyMCZ(g.Controls, g.Target)
	case KindMeasure:
		// handled by Sample
	default:
		panic(fmt.Sprintf("qsim: unhandled gate kind %s", g.Kind))
	}
}

// Sample evolves c and draws shots independent measurements from the final
// probability distribution. Each sampled basis state is mapped through the
// declared qubit-to-classical-bit assignments; qubits without an assignment
// are traced out of the reported bitstring. A circuit with no measurement
// operations measures every qubit in place.
func (e *Engine) Sample(c *Circuit, shots int) (Counts, error) {
	if shots < 1 {
		return nil, ErrBadShots
	}
	state, err := e.Evolve(c)
	if err != nil {
		return nil, err
	}

	probs := state.Probabilities()
	total := 0.0
	for i, p := range probs {
		if p < probEpsilon {
			probs[i] = 0
		}
		total += probs[i]
	}
	if total <= 0 {
		return nil, errors.New("probability vector sums to zero; gate application is broken")
	}
	// Cumulative distribution normalized to end exactly at 1.
	cum := make([]float64, len(probs))
	running := 0.0
	for i, p := range probs {
		running += p / total
		cum[i] = running
	}
	cum[len(cum)-1] = 1

	qubitFor, width := c.classicalMap()

	counts := make(Counts)
	for shot := 0; shot < shots; shot++ {
		r := e.rng.Float64()
		idx := sort.SearchFloat64s(cum, r)
		for idx < len(probs) && probs[idx] == 0 {
			idx++
		}
		if idx >= len(probs) {
			idx = len(probs) - 1
		}
		counts[formatResult(idx, qubitFor, width)]++
	}
	return counts, nil
}

// classicalMap returns, per classical bit, the qubit feeding it (-1 when
// unassigned), plus the width of the reported bitstring. Without any
// declared measurement every qubit maps to the classical bit of its own
// index.
func (c *Circuit) classicalMap() ([]int, int) {
	ms := c.Measurements()
	if len(ms) == 0 {
		qubitFor := make([]int, c.NumQubits)
		for q := range qubitFor {
			qubitFor[q] = q
		}
		return qubitFor, c.NumQubits
	}
	qubitFor := make([]int, c.NumCbits)
	for i := range qubitFor {
		qubitFor[i] = -1
	}
	for _, m := range ms {
		qubitFor[m.Cbit] = m.Target
	}
	return qubitFor, c.NumCbits
}

func formatResult(basis int, qubitFor []int, width int) string {
	buf := make([]byte, width)
	for cbit := 0; cbit < width; cbit++ {
		ch := byte('0')
		if q := qubitFor[cbit]; q >= 0 && basis&(1<<q) != 0 {
			ch = '1'
		}
		buf[width-1-cbit] = ch
	}
	return string(buf)
}

// Expectation evolves c and returns the real expectation value of the
// weighted Pauli operator against the final state.
func (e *Engine) Expectation(c *Circuit, op PauliOperator) (float64, error) {
	state, err := e.Evolve(c)
	if err != nil {
		return 0, err
	}
	return op.Expectation(state)
}
