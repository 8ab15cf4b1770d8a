package vqe

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"

	"qsimlab/qsim"
)

// H2Hamiltonian returns a toy two-qubit Hamiltonian for the hydrogen
// molecule in Hartree units, a small weighted Pauli sum.
func H2Hamiltonian() qsim.PauliOperator {
	op, err := qsim.NewPauliOperator([]qsim.PauliTerm{
		{Pauli: "II", Coeff: -1.052373245772859},
		{Pauli: "IZ", Coeff: 0.39793742484318045},
		{Pauli: "ZI", Coeff: -0.39793742484318045},
		{Pauli: "ZZ", Coeff: -0.01128010425624393},
		{Pauli: "XX", Coeff: 0.18093119978423156},
	})
	if err != nil {
		panic(err) // the terms are literals
	}
	return op
}

// Result carries the outcome of a minimization run.
type Result struct {
	// Energy is the lowest expectation value found.
	Energy float64
	// Params is the parameter vector achieving Energy.
	Params []float64
	// Evaluations counts objective function calls.
	Evaluations int
}

// Energy evaluates the expectation of op in the ansatz state at params.
func Energy(op qsim.PauliOperator, ansatz *Ansatz, params []float64) (float64, error) {
	c, err := ansatz.Bind(params)
	if err != nil {
		return 0, err
	}
	return qsim.NewEngine().Expectation(c, op)
}

// Minimize runs Nelder-Mead over the ansatz parameters to push the
// expectation of op down, starting from initial and stopping after at most
// maxEvals objective evaluations.
func Minimize(op qsim.PauliOperator, ansatz *Ansatz, initial []float64, maxEvals int) (*Result, error) {
	if op.NumQubits() != ansatz.NumQubits {
		return nil, fmt.Errorf("operator acts on %d qubits, ansatz prepares %d", op.NumQubits(), ansatz.NumQubits)
	}
	if len(initial) != ansatz.NumParameters() {
		return nil, fmt.Errorf("got %d initial parameters, ansatz takes %d", len(initial), ansatz.NumParameters())
	}
	if maxEvals < 1 {
		return nil, fmt.Errorf("evaluation budget must be >= 1, got %d", maxEvals)
	}

	engine := qsim.NewEngine()
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			c, err := ansatz.Bind(x)
			if err != nil {
				panic(err) // dimension fixed by the optimizer
			}
			val, err := engine.Expectation(c, op)
			if err != nil {
				panic(err)
			}
			return val
		},
	}
	settings := &optimize.Settings{FuncEvaluations: maxEvals}

	res, err := optimize.Minimize(problem, initial, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("optimization failed: %w", err)
	}

	params := make([]float64, len(res.X))
	copy(params, res.X)
	return &Result{
		Energy:      res.F,
		Params:      params,
		Evaluations: res.Stats.FuncEvaluations,
	}, nil
}
