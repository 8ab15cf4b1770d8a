package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"qsimlab/qsim"
)

var playQubits int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "interactive circuit playground",
	Long: "play opens a live statevector playground. Type OpenQASM statements\n" +
		"(h q[0], cx q[0], q[1], rx(pi/2) q[0], ...) to append gates and watch\n" +
		"the qubit marginals update. Commands: run, undo, clear, quit.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if playQubits < 1 || playQubits > 10 {
			return fmt.Errorf("qubit count %d outside [1, 10]", playQubits)
		}
		_, err := tea.NewProgram(newPlayModel(playQubits), tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	playCmd.Flags().IntVar(&playQubits, "qubits", 3, "register width")
	rootCmd.AddCommand(playCmd)
}

// playModel is the playground state. The statement list is the source of
// truth; the circuit and marginals are rebuilt after every edit.
type playModel struct {
	numQubits  int
	statements []string
	input      textinput.Model

	circuit   *qsim.Circuit
	marginals []qsim.QubitProbability
	counts    qsim.Counts
	errMsg    string
}

func newPlayModel(numQubits int) playModel {
	ti := textinput.New()
	ti.Placeholder = "h q[0]"
	ti.Prompt = "> "
	ti.CharLimit = 80
	ti.Focus()

	m := playModel{numQubits: numQubits, input: ti}
	m.rebuild()
	return m
}

// qasm assembles the full program for the current statement list.
func (m *playModel) qasm() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", m.numQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n", m.numQubits)
	for _, s := range m.statements {
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *playModel) rebuild() {
	m.errMsg = ""
	c, err := qsim.ParseQASM(m.qasm())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	state, err := qsim.NewEngine().Evolve(c)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.circuit = c
	m.marginals = state.QubitProbabilities()
}

// apply handles one submitted line: a meta command or a QASM statement.
// Returns a quit command when the session ends.
func (m *playModel) apply(line string) tea.Cmd {
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ";"))
	if line == "" {
		return nil
	}

	switch line {
	case "quit", "exit", "q":
		return tea.Quit
	case "clear":
		m.statements = nil
		m.counts = nil
		m.rebuild()
		return nil
	case "undo":
		if len(m.statements) > 0 {
			m.statements = m.statements[:len(m.statements)-1]
		}
		m.counts = nil
		m.rebuild()
		return nil
	case "run":
		if m.circuit == nil {
			m.errMsg = "nothing to run"
			return nil
		}
		counts, err := newEngine().Sample(m.circuit, flagShots)
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.counts = counts
		return nil
	}

	// Trial-append the statement; roll back when it does not parse.
	m.statements = append(m.statements, line+";")
	m.counts = nil
	m.rebuild()
	if m.errMsg != "" {
		m.statements = m.statements[:len(m.statements)-1]
		saved := m.errMsg
		m.rebuild()
		m.errMsg = saved
	}
	return nil
}

func (m playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			cmd := m.apply(m.input.Value())
			m.input.SetValue("")
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m playModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("qlab playground"))
	fmt.Fprintf(&sb, " %s\n\n", dimStyle.Render(fmt.Sprintf("(%d qubits)", m.numQubits)))

	// Program panel.
	var prog strings.Builder
	prog.WriteString(titleStyle.Render("Program"))
	prog.WriteString("\n")
	if len(m.statements) == 0 {
		prog.WriteString(dimStyle.Render("(empty)"))
		prog.WriteString("\n")
	}
	for _, s := range m.statements {
		prog.WriteString(s)
		prog.WriteString("\n")
	}
	sb.WriteString(circuitStyle.Render(strings.TrimRight(prog.String(), "\n")))
	sb.WriteString("\n")

	// State panel: per-qubit marginals.
	var state strings.Builder
	state.WriteString(titleStyle.Render("Qubit marginals"))
	state.WriteString("\n")
	for q, p := range m.marginals {
		state.WriteString(qubitLabelStyle.Render(fmt.Sprintf("q[%d] ", q)))
		state.WriteString(barStyle.Render(probabilityBar(p.Prob1, 20)))
		state.WriteString(fmt.Sprintf(" P(1)=%.3f\n", p.Prob1))
	}
	if m.circuit != nil {
		state.WriteString(dimStyle.Render(fmt.Sprintf("gates %d, depth %d", len(m.circuit.Gates), m.circuit.Depth())))
		state.WriteString("\n")
	}
	sb.WriteString(stateStyle.Render(strings.TrimRight(state.String(), "\n")))
	sb.WriteString("\n")

	// Histogram after a run.
	if len(m.counts) > 0 {
		var hist strings.Builder
		hist.WriteString(titleStyle.Render(fmt.Sprintf("Samples (%d shots)", m.counts.Total())))
		hist.WriteString("\n")
		total := m.counts.Total()
		for _, e := range sortedEntries(m.counts) {
			p := float64(e.count) / float64(total)
			hist.WriteString(fmt.Sprintf("%s %5d ", e.state, e.count))
			hist.WriteString(barStyle.Render(probabilityBar(p, 20)))
			hist.WriteString("\n")
		}
		sb.WriteString(stateStyle.Render(strings.TrimRight(hist.String(), "\n")))
		sb.WriteString("\n")
	}

	if m.errMsg != "" {
		sb.WriteString(errorStyle.Render("error: " + m.errMsg))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("enter statement or: run, undo, clear, quit"))
	return sb.String()
}
