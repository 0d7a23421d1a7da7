package solver

import (
	"math"
)

// Solution is the algorithm-specific mutable state threaded through a
// Problem's primitives. The driver never inspects it.
type Solution any

// Problem exposes the fixed-point iteration primitives of an algorithm.
// The driver stays agnostic of the concrete algorithm behind them.
type Problem interface {
	// Compatible verifies that the solution buffers can serve this problem.
	Compatible(s Solution) error
	// Initialize seeds the solution state for a fresh run.
	Initialize(s Solution) error
	// Update performs one fixed-point sweep, mutating s in place.
	Update(s Solution) error
	// Objective evaluates the quantity the iteration ascends.
	Objective(s Solution) float64
}

// Result summarizes a Solve run. Non-convergence is not an error; callers
// that need a guarantee inspect Converged and the objective trajectory.
type Result struct {
	Iterations int
	Objective  float64
	Converged  bool
}

// Solve drives p's primitives until the objective's change falls within
// cfg.Tol or cfg.MaxIter sweeps have run. The solution buffers are owned
// by the caller and mutated in place; no reallocation happens inside the
// loop.
func Solve(p Problem, s Solution, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := p.Compatible(s); err != nil {
		return Result{}, err
	}
	if err := p.Initialize(s); err != nil {
		return Result{}, err
	}

	log := cfg.logger()
	obj := p.Objective(s)
	if cfg.Verbosity == PerIteration {
		log.Info().Int("iter", 0).Float64("objective", obj).Msg("initialized")
	}

	res := Result{Objective: obj}
	for iter := 1; iter <= cfg.MaxIter; iter++ {
		if err := p.Update(s); err != nil {
			return res, err
		}
		prev := obj
		obj = p.Objective(s)
		res.Iterations = iter
		res.Objective = obj

		if cfg.Verbosity == PerIteration {
			log.Info().
				Int("iter", iter).
				Float64("objective", obj).
				Float64("delta", obj-prev).
				Msg("updated")
		}
		if math.Abs(obj-prev) <= cfg.Tol*(math.Abs(obj)+cfg.Tol) {
			res.Converged = true
			break
		}
	}

	if cfg.Verbosity != Silent {
		log.Info().
			Int("iterations", res.Iterations).
			Float64("objective", res.Objective).
			Bool("converged", res.Converged).
			Msg("solve finished")
	}
	return res, nil
}
