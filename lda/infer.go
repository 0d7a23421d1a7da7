package lda

import (
	"math"

	"github.com/23skdu/varlda/internal/errors"
	"github.com/23skdu/varlda/internal/metrics"
	"github.com/23skdu/varlda/solver"
)

// Infer runs variational inference for one document. It allocates a
// Solution sized to the problem, drives it with the generic fixed-point
// solver under cfg's stopping policy, and returns the final state along
// with the solver's run summary. Non-convergence is reported through
// Result.Converged, never as an error.
func Infer(m *Model, d *Document, cfg solver.Config) (*Solution, solver.Result, error) {
	p, err := NewProblem(m, d)
	if err != nil {
		return nil, solver.Result{}, err
	}
	sol := NewSolution(m.NumTopics(), d.Len())

	res, err := solver.Solve(p.DriverProblem(), sol, cfg)
	if err != nil {
		return nil, res, err
	}

	status := "maxiter"
	if res.Converged {
		status = "converged"
	}
	metrics.DocumentsInferredTotal.WithLabelValues(status).Inc()
	metrics.InferenceIterations.Observe(float64(res.Iterations))
	return sol, res, nil
}

// DriverProblem adapts p to the solver's algorithm-agnostic interface.
func (p *Problem) DriverProblem() solver.Problem {
	return driverProblem{p}
}

type driverProblem struct {
	p *Problem
}

func asSolution(s solver.Solution) (*Solution, error) {
	sol, ok := s.(*Solution)
	if !ok {
		return nil, errors.NewValidationError("solve", "solution is not an lda.Solution")
	}
	return sol, nil
}

func (a driverProblem) Compatible(s solver.Solution) error {
	sol, err := asSolution(s)
	if err != nil {
		return err
	}
	return a.p.Compatible(sol)
}

func (a driverProblem) Initialize(s solver.Solution) error {
	sol, err := asSolution(s)
	if err != nil {
		return err
	}
	return a.p.Initialize(sol)
}

func (a driverProblem) Update(s solver.Solution) error {
	sol, err := asSolution(s)
	if err != nil {
		return err
	}
	return a.p.Update(sol)
}

func (a driverProblem) Objective(s solver.Solution) float64 {
	sol, err := asSolution(s)
	if err != nil {
		return math.Inf(-1)
	}
	return a.p.Objective(sol)
}
