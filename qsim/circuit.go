package qsim

import "fmt"

// GateKind enumerates every operation the engine understands. The set is
// closed: the engine dispatches with an exhaustive switch, so adding a kind
// without teaching the engine about it is a compile-visible change, not a
// silent fallthrough.
type GateKind uint8

const (
	KindH GateKind = iota
	KindX
	KindY
	KindZ
	KindS
	KindSdg
	KindT
	KindTdg
	KindRX
	KindRY
	KindRZ
	KindPhase
	KindCX
	KindCZ
	KindCPhase
	KindSwap
	KindCCX
	KindMCX
	KindMCZ
	KindMeasure
)

var kindNames = map[GateKind]string{
	KindH:       "H",
	KindX:       "X",
	KindY:       "Y",
	KindZ:       "Z",
	KindS:       "S",
	KindSdg:     "SDG",
	KindT:       "T",
	KindTdg:     "TDG",
	KindRX:      "RX",
	KindRY:      "RY",
	KindRZ:      "RZ",
	KindPhase:   "P",
	KindCX:      "CX",
	KindCZ:      "CZ",
	KindCPhase:  "CP",
	KindSwap:    "SWAP",
	KindCCX:     "CCX",
	KindMCX:     "MCX",
	KindMCZ:     "MCZ",
	KindMeasure: "MEASURE",
}

func (k GateKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("GateKind(%d)", k)
}

// Gate is a single operation in a circuit program. Immutable once appended.
//
// Controls holds control qubits for controlled kinds; for KindSwap it holds
// the partner qubit. Theta is the rotation/phase angle where applicable.
// Cbit is the classical bit receiving a measurement result, -1 otherwise.
type Gate struct {
	Kind     GateKind
	Target   int
	Controls []int
	Theta    float64
	Cbit     int
}

// Qubits returns every qubit index the gate touches.
func (g Gate) Qubits() []int {
	qs := make([]int, 0, 1+len(g.Controls))
	qs = append(qs, g.Target)
	qs = append(qs, g.Controls...)
	return qs
}

// Circuit is an ordered, append-only program over a declared register of
// NumQubits qubits and NumCbits classical bits. Builder methods panic on
// out-of-range indices: a bad index is a bug in the calling builder, not a
// runtime condition to tolerate.
type Circuit struct {
	NumQubits int
	NumCbits  int
	Gates     []Gate

	assigned []bool // classical bits already bound to a measurement
}

// MaxQubits caps the register width. The engine allocates 2^n amplitudes,
// so anything wider would exhaust memory (or overflow the shift) long
// before simulating.
const MaxQubits = 30

// NewCircuit declares a register. numCbits may be zero for analysis-only
// circuits; it must not exceed numQubits.
func NewCircuit(numQubits, numCbits int) *Circuit {
	if numQubits <= 0 {
		panic(fmt.Sprintf("qsim: circuit needs at least one qubit, got %d", numQubits))
	}
	if numQubits > MaxQubits {
		panic(fmt.Sprintf("qsim: %d qubits exceeds the %d-qubit limit", numQubits, MaxQubits))
	}
	if numCbits < 0 || numCbits > numQubits {
		panic(fmt.Sprintf("qsim: classical bit count %d outside [0, %d]", numCbits, numQubits))
	}
	return &Circuit{
		NumQubits: numQubits,
		NumCbits:  numCbits,
		assigned:  make([]bool, numCbits),
	}
}

func (c *Circuit) checkQubit(q int) {
	if q < 0 || q >= c.NumQubits {
		panic(fmt.Sprintf("qsim: qubit %d out of range [0, %d)", q, c.NumQubits))
	}
}

func (c *Circuit) add(g Gate) {
	c.checkQubit(g.Target)
	seen := map[int]bool{g.Target: true}
	for _, q := range g.Controls {
		c.checkQubit(q)
		if seen[q] {
			panic(fmt.Sprintf("qsim: %s references qubit %d twice", g.Kind, q))
		}
		seen[q] = true
	}
	c.Gates = append(c.Gates, g)
}

func (c *Circuit) H(q int)   { c.add(Gate{Kind: KindH, Target: q, Cbit: -1}) }
func (c *Circuit) X(q int)   { c.add(Gate{Kind: KindX, Target: q, Cbit: -1}) }
func (c *Circuit) Y(q int)   { c.add(Gate{Kind: KindY, Target: q, Cbit: -1}) }
func (c *Circuit) Z(q int)   { c.add(Gate{Kind: KindZ, Target: q, Cbit: -1}) }
func (c *Circuit) S(q int)   { c.add(Gate{Kind: KindS, Target: q, Cbit: -1}) }
func (c *Circuit) Sdg(q int) { c.add(Gate{Kind: KindSdg, Target: q, Cbit: -1}) }
func (c *Circuit) T(q int)   { c.add(Gate{Kind: KindT, Target: q, Cbit: -1}) }
func (c *Circuit) Tdg(q int) { c.add(Gate{Kind: KindTdg, Target: q, Cbit: -1}) }

func (c *Circuit) RX(q int, theta float64) {
	c.add(Gate{Kind: KindRX, Target: q, Theta: theta, Cbit: -1})
}

func (c *Circuit) RY(q int, theta float64) {
	c.add(Gate{Kind: KindRY, Target: q, Theta: theta, Cbit: -1})
}

func (c *Circuit) RZ(q int, theta float64) {
	c.add(Gate{Kind: KindRZ, Target: q, Theta: theta, Cbit: -1})
}

// Phase applies the P/U1 gate: e^(i*theta) on the |1> branch of q.
func (c *Circuit) Phase(q int, theta float64) {
	c.add(Gate{Kind: KindPhase, Target: q, Theta: theta, Cbit: -1})
}

func (c *Circuit) CX(control, target int) {
	c.add(Gate{Kind: KindCX, Target: target, Controls: []int{control}, Cbit: -1})
}

func (c *Circuit) CZ(control, target int) {
	c.add(Gate{Kind: KindCZ, Target: target, Controls: []int{control}, Cbit: -1})
}

// CPhase applies e^(i*theta) where both control and target are 1.
func (c *Circuit) CPhase(control, target int, theta float64) {
	c.add(Gate{Kind: KindCPhase, Target: target, Controls: []int{control}, Theta: theta, Cbit: -1})
}

func (c *Circuit) Swap(a, b int) {
	c.add(Gate{Kind: KindSwap, Target: b, Controls: []int{a}, Cbit: -1})
}

func (c *Circuit) CCX(control1, control2, target int) {
	c.add(Gate{Kind: KindCCX, Target: target, Controls: []int{control1, control2}, Cbit: -1})
}

// MCX applies X on target when every control qubit is 1.
func (c *Circuit) MCX(controls []int, target int) {
	if len(controls) == 0 {
		panic("qsim: MCX needs at least one control")
	}
	cs := make([]int, len(controls))
	copy(cs, controls)
	c.add(Gate{Kind: KindMCX, Target: target, Controls: cs, Cbit: -1})
}

// MCZ applies Z on target when every control qubit is 1.
func (c *Circuit) MCZ(controls []int, target int) {
	if len(controls) == 0 {
		panic("qsim: MCZ needs at least one control")
	}
	cs := make([]int, len(controls))
	copy(cs, controls)
	c.add(Gate{Kind: KindMCZ, Target: target, Controls: cs, Cbit: -1})
}

// Measure binds qubit q to classical bit cbit. Each classical bit may be
// declared exactly once; re-declaring it is a builder bug.
func (c *Circuit) Measure(q, cbit int) {
	c.checkQubit(q)
	if cbit < 0 || cbit >= c.NumCbits {
		panic(fmt.Sprintf("qsim: classical bit %d out of range [0, %d)", cbit, c.NumCbits))
	}
	if c.assigned[cbit] {
		panic(fmt.Sprintf("qsim: classical bit %d already assigned", cbit))
	}
	c.assigned[cbit] = true
	c.Gates = append(c.Gates, Gate{Kind: KindMeasure, Target: q, Cbit: cbit})
}

// MeasureAll measures every qubit onto the classical bit of the same index.
// The circuit must have been declared with NumCbits == NumQubits.
func (c *Circuit) MeasureAll() {
	for q := 0; q < c.NumQubits; q++ {
		c.Measure(q, q)
	}
}

// Measurements returns the declared measurement operations in program order.
func (c *Circuit) Measurements() []Gate {
	var ms []Gate
	for _, g := range c.Gates {
		if g.Kind == KindMeasure {
			ms = append(ms, g)
		}
	}
	return ms
}

// Validate re-checks every index reference. Builder methods already enforce
// this; Validate guards circuits assembled by hand or from parsed input.
func (c *Circuit) Validate() error {
	if c.NumQubits <= 0 {
		return fmt.Errorf("circuit declares %d qubits", c.NumQubits)
	}
	if c.NumQubits > MaxQubits {
		return fmt.Errorf("circuit declares %d qubits, more than the %d-qubit limit", c.NumQubits, MaxQubits)
	}
	if c.NumCbits < 0 || c.NumCbits > c.NumQubits {
		return fmt.Errorf("circuit declares %d classical bits for %d qubits", c.NumCbits, c.NumQubits)
	}
	seen := make([]bool, c.NumCbits)
	for i, g := range c.Gates {
		for _, q := range g.Qubits() {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("gate %d (%s) references qubit %d outside [0, %d)", i, g.Kind, q, c.NumQubits)
			}
		}
		if g.Kind == KindMeasure {
			if g.Cbit < 0 || g.Cbit >= c.NumCbits {
				return fmt.Errorf("gate %d measures onto classical bit %d outside [0, %d)", i, g.Cbit, c.NumCbits)
			}
			if seen[g.Cbit] {
				return fmt.Errorf("gate %d re-declares classical bit %d", i, g.Cbit)
			}
			seen[g.Cbit] = true
		}
	}
	return nil
}

// Schedule assigns each gate to the earliest timeline step where none of its
// qubits are busy, and returns gate indices grouped by step. Gates on
// disjoint qubits share a step; program order is preserved per qubit.
func (c *Circuit) Schedule() [][]int {
	last := make([]int, c.NumQubits) // next free step per qubit
	var steps [][]int
	for i, g := range c.Gates {
		step := 0
		for _, q := range g.Qubits() {
			if last[q] > step {
				step = last[q]
			}
		}
		for _, q := range g.Qubits() {
			last[q] = step + 1
		}
		for len(steps) <= step {
			steps = append(steps, nil)
		}
		steps[step] = append(steps[step], i)
	}
	return steps
}

// Depth is the number of parallel timeline steps the program occupies.
func (c *Circuit) Depth() int {
	return len(c.Schedule())
}
