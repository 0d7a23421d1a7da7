package solver

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// halvingProblem moves x halfway toward target each sweep; its objective
// is the negated squared distance, so it increases monotonically.
type halvingProblem struct {
	target float64
}

type halvingState struct {
	x float64
}

func (p halvingProblem) Compatible(s Solution) error {
	if _, ok := s.(*halvingState); !ok {
		return assert.AnError
	}
	return nil
}

func (p halvingProblem) Initialize(s Solution) error {
	s.(*halvingState).x = 0
	return nil
}

func (p halvingProblem) Update(s Solution) error {
	st := s.(*halvingState)
	st.x += (p.target - st.x) / 2
	return nil
}

func (p halvingProblem) Objective(s Solution) float64 {
	d := p.target - s.(*halvingState).x
	return -d * d
}

func TestSolve_Converges(t *testing.T) {
	st := &halvingState{}
	res, err := Solve(halvingProblem{target: 8}, st, Config{MaxIter: 200, Tol: 1e-12})
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Less(t, res.Iterations, 200)
	assert.InDelta(t, 8.0, st.x, 1e-4)
	assert.InDelta(t, 0.0, res.Objective, 1e-6)
}

func TestSolve_MaxIterCap(t *testing.T) {
	st := &halvingState{}
	res, err := Solve(halvingProblem{target: 8}, st, Config{MaxIter: 3, Tol: 0})
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, 3, res.Iterations)
}

func TestSolve_CompatibilityFailureAborts(t *testing.T) {
	_, err := Solve(halvingProblem{target: 1}, "wrong state", Config{MaxIter: 10, Tol: 0})
	assert.Error(t, err)
}

func TestSolve_InvalidConfig(t *testing.T) {
	st := &halvingState{}

	_, err := Solve(halvingProblem{target: 1}, st, Config{MaxIter: 0, Tol: 1e-6})
	assert.ErrorIs(t, err, ErrInvalidMaxIter)

	_, err = Solve(halvingProblem{target: 1}, st, Config{MaxIter: 10, Tol: -1})
	assert.ErrorIs(t, err, ErrInvalidTol)
}

func TestSolve_VerbosityLogging(t *testing.T) {
	for _, v := range []Verbosity{Silent, PerIteration, FinalOnly} {
		log := zerolog.Nop()
		st := &halvingState{}
		_, err := Solve(halvingProblem{target: 2}, st, Config{
			MaxIter:   10,
			Tol:       1e-9,
			Verbosity: v,
			Logger:    &log,
		})
		require.NoError(t, err, v.String())
	}
}
