package qsim

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for QASM parsing.
var (
	singleGateRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	singleGateParamRegex = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex        = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	twoQubitParamRegex   = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	threeQubitRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\],\s*q\[(\d+)\];?$`)
	measureRegex         = regexp.MustCompile(`^measure\s+q\[(\d+)\]\s*->\s*c\[(\d+)\];?$`)
	qregRegex            = regexp.MustCompile(`qreg\s+\w+\[(\d+)\]`)
	cregRegex            = regexp.MustCompile(`creg\s+\w+\[(\d+)\]`)
	barrierRegex         = regexp.MustCompile(`^barrier\s+`)
)

// QASM generates OpenQASM 2.0 output from the circuit. Gates with more than
// two controls have no standard-library spelling and abort the export.
func (c *Circuit) QASM() (string, error) {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	if c.NumCbits > 0 {
		fmt.Fprintf(&sb, "creg c[%d];\n", c.NumCbits)
	}
	sb.WriteString("\n")

	for i, g := range c.Gates {
		switch g.Kind {
		case KindH, KindX, KindY, KindZ, KindS, KindSdg, KindT, KindTdg:
			fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(g.Kind.String()), g.Target)
		case KindRX:
			fmt.Fprintf(&sb, "rx(%s) q[%d];\n", FormatParam(g.Theta), g.Target)
		case KindRY:
			fmt.Fprintf(&sb, "ry(%s) q[%d];\n", FormatParam(g.Theta), g.Target)
		case KindRZ:
			fmt.Fprintf(&sb, "rz(%s) q[%d];\n", FormatParam(g.Theta), g.Target)
		case KindPhase:
			fmt.Fprintf(&sb, "u1(%s) q[%d];\n", FormatParam(g.Theta), g.Target)
		case KindCX:
			fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", g.Controls[0], g.Target)
		case KindCZ:
			fmt.Fprintf(&sb, "cz q[%d], q[%d];\n", g.Controls[0], g.Target)
		case KindCPhase:
			fmt.Fprintf(&sb, "cu1(%s) q[%d], q[%d];\n", FormatParam(g.Theta), g.Controls[0], g.Target)
		case KindSwap:
			fmt.Fprintf(&sb, "swap q[%d], q[%d];\n", g.Controls[0], g.Target)
		case KindCCX:
			fmt.Fprintf(&sb, "ccx q[%d], q[%d], q[%d];\n", g.Controls[0], g.Controls[1], g.Target)
		case KindMCX:
			if len(g.Controls) == 1 {
				fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", g.Controls[0], g.Target)
			} else if len(g.Controls) == 2 {
				fmt.Fprintf(&sb, "ccx q[%d], q[%d], q[%d];\n", g.Controls[0], g.Controls[1], g.Target)
			} else {
				return "", fmt.Errorf("gate %d: MCX with %d controls has no QASM 2.0 spelling", i, len(g.Controls))
			}
		case KindMCZ:
			if len(g.Controls) == 1 {
				fmt.Fprintf(&sb, "cz q[%d], q[%d];\n", g.Controls[0], g.Target)
			} else {
				return "", fmt.Errorf("gate %d: MCZ with %d controls has no QASM 2.0 spelling", i, len(g.Controls))
			}
		case KindMeasure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", g.Target, g.Cbit)
		default:
			return "", fmt.Errorf("gate %d: cannot export %s", i, g.Kind)
		}
	}
	return sb.String(), nil
}

// ParseQASM rebuilds a circuit from OpenQASM 2.0 text covering the gate set
// this package simulates. Unlike the builder methods, parse problems are
// reported as errors: the input is user data, not program code.
func ParseQASM(qasm string) (*Circuit, error) {
	numQubits := 0
	numCbits := 0
	var body []string

	lines := strings.Split(qasm, "\n")
	for lineNo, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if strings.HasPrefix(line, "qreg") {
			matches := qregRegex.FindStringSubmatch(line)
			if matches == nil {
				return nil, fmt.Errorf("line %d: bad qreg declaration %q", lineNo+1, line)
			}
			numQubits, _ = strconv.Atoi(matches[1])
			continue
		}
		if strings.HasPrefix(line, "creg") {
			matches := cregRegex.FindStringSubmatch(line)
			if matches == nil {
				return nil, fmt.Errorf("line %d: bad creg declaration %q", lineNo+1, line)
			}
			numCbits, _ = strconv.Atoi(matches[1])
			continue
		}
		body = append(body, line)
	}

	if numQubits <= 0 {
		return nil, fmt.Errorf("no qreg declaration found")
	}
	if numQubits > MaxQubits {
		return nil, fmt.Errorf("qreg width %d exceeds the %d-qubit limit", numQubits, MaxQubits)
	}
	if numCbits > numQubits {
		return nil, fmt.Errorf("creg width %d exceeds qreg width %d", numCbits, numQubits)
	}

	c := NewCircuit(numQubits, numCbits)
	for _, line := range body {
		if err := parseStatement(c, line); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func parseStatement(c *Circuit, line string) error {
	if barrierRegex.MatchString(line) {
		return nil // barriers have no simulation effect
	}

	if matches := measureRegex.FindStringSubmatch(line); matches != nil {
		q, _ := strconv.Atoi(matches[1])
		cbit, _ := strconv.Atoi(matches[2])
		if q >= c.NumQubits {
			return fmt.Errorf("measure references qubit %d outside qreg[%d]", q, c.NumQubits)
		}
		if cbit >= c.NumCbits {
			return fmt.Errorf("measure references classical bit %d outside creg[%d]", cbit, c.NumCbits)
		}
		if c.assigned[cbit] {
			return fmt.Errorf("classical bit %d measured twice", cbit)
		}
		c.Measure(q, cbit)
		return nil
	}

	if matches := threeQubitRegex.FindStringSubmatch(line); matches != nil {
		name := strings.ToLower(matches[1])
		q1, _ := strconv.Atoi(matches[2])
		q2, _ := strconv.Atoi(matches[3])
		q3, _ := strconv.Atoi(matches[4])
		if err := checkParsedQubits(c, line, q1, q2, q3); err != nil {
			return err
		}
		if name != "ccx" && name != "toffoli" {
			return fmt.Errorf("unsupported three-qubit gate %q", name)
		}
		c.CCX(q1, q2, q3)
		return nil
	}

	if matches := twoQubitParamRegex.FindStringSubmatch(line); matches != nil {
		name := strings.ToLower(matches[1])
		theta, ok := ParseParamExpr(matches[2])
		if !ok {
			return fmt.Errorf("bad angle %q in %q", matches[2], line)
		}
		q1, _ := strconv.Atoi(matches[3])
		q2, _ := strconv.Atoi(matches[4])
		if err := checkParsedQubits(c, line, q1, q2); err != nil {
			return err
		}
		switch name {
		case "cp", "cu1":
			c.CPhase(q1, q2, theta)
		default:
			return fmt.Errorf("unsupported parameterized two-qubit gate %q", name)
		}
		return nil
	}

	if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
		name := strings.ToLower(matches[1])
		q1, _ := strconv.Atoi(matches[2])
		q2, _ := strconv.Atoi(matches[3])
		if err := checkParsedQubits(c, line, q1, q2); err != nil {
			return err
		}
		switch name {
		case "cx", "cnot":
			c.CX(q1, q2)
		case "cz":
			c.CZ(q1, q2)
		case "swap":
			c.Swap(q1, q2)
		default:
			return fmt.Errorf("unsupported two-qubit gate %q", name)
		}
		return nil
	}

	if matches := singleGateParamRegex.FindStringSubmatch(line); matches != nil {
		name := strings.ToLower(matches[1])
		theta, ok := ParseParamExpr(matches[2])
		if !ok {
			return fmt.Errorf("bad angle %q in %q", matches[2], line)
		}
		q, _ := strconv.Atoi(matches[3])
		if err := checkParsedQubits(c, line, q); err != nil {
			return err
		}
		switch name {
		case "rx":
			c.RX(q, theta)
		case "ry":
			c.RY(q, theta)
		case "rz":
			c.RZ(q, theta)
		case "p", "u1":
			c.Phase(q, theta)
		default:
			return fmt.Errorf("unsupported parameterized gate %q", name)
		}
		return nil
	}

	if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
		name := strings.ToLower(matches[1])
		q, _ := strconv.Atoi(matches[2])
		if err := checkParsedQubits(c, line, q); err != nil {
			return err
		}
		switch name {
		case "h":
			c.H(q)
		case "x":
			c.X(q)
		case "y":
			c.Y(q)
		case "z":
			c.Z(q)
		case "s":
			c.S(q)
		case "sdg":
			c.Sdg(q)
		case "t":
			c.T(q)
		case "tdg":
			c.Tdg(q)
		case "id":
			// explicit identity; nothing to apply
		default:
			return fmt.Errorf("unsupported gate %q", name)
		}
		return nil
	}

	return fmt.Errorf("cannot parse statement %q", line)
}

func checkParsedQubits(c *Circuit, line string, qubits ...int) error {
	seen := make(map[int]bool, len(qubits))
	for _, q := range qubits {
		if q >= c.NumQubits {
			return fmt.Errorf("%q references qubit %d outside qreg[%d]", line, q, c.NumQubits)
		}
		if seen[q] {
			return fmt.Errorf("%q references qubit %d twice", line, q)
		}
		seen[q] = true
	}
	return nil
}
