package lda

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solution holds the mutable variational state for one document. The
// buffers are allocated once for a maximum topic and distinct-term count
// and reused across documents; Initialize resets them and Update mutates
// them in place, so the hot path never allocates.
//
// A Solution is exclusively owned by one inference task at a time. Run
// concurrent documents with one Solution each.
type Solution struct {
	// Gamma is the variational Dirichlet parameter over topics.
	Gamma []float64
	// ElogTheta is E[log theta_t] under Dirichlet(Gamma).
	ElogTheta []float64
	// Phi has one row per distinct term; row i is the topic simplex of
	// the i-th term. Only the first Document.Len() rows are meaningful.
	Phi *mat.Dense
	// TocWeights is the count-weighted topic mass accumulated from Phi.
	TocWeights []float64

	maxTerms int
}

// NewSolution allocates buffers for up to numTopics topics and maxTerms
// distinct terms. Both must be positive; like a zero-sized matrix, an
// empty buffer block has no use.
func NewSolution(numTopics, maxTerms int) *Solution {
	if numTopics <= 0 || maxTerms <= 0 {
		panic("lda: NewSolution requires positive dimensions")
	}
	return &Solution{
		Gamma:      make([]float64, numTopics),
		ElogTheta:  make([]float64, numTopics),
		Phi:        mat.NewDense(maxTerms, numTopics, nil),
		TocWeights: make([]float64, numTopics),
		maxTerms:   maxTerms,
	}
}

// MaxTerms returns the distinct-term capacity of the Phi buffer.
func (s *Solution) MaxTerms() int {
	return s.maxTerms
}

// MeanTheta returns Gamma normalized to sum to 1: the posterior mean
// estimate of the document's topic proportions.
func MeanTheta(s *Solution) []float64 {
	theta := append([]float64(nil), s.Gamma...)
	floats.Scale(1/floats.Sum(theta), theta)
	return theta
}
