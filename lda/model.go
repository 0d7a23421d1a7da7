// Package lda implements mean-field variational inference for Latent
// Dirichlet Allocation: given a fixed topic model and one document, it
// fits an approximate posterior over the document's topic mixture and
// per-word topic assignments by coordinate ascent on the evidence lower
// bound.
package lda

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/23skdu/varlda/internal/errors"
	"github.com/23skdu/varlda/internal/metrics"
)

// Model holds fixed topic-word distributions and a Dirichlet prior over
// topic proportions. The log-probability table is built once at
// construction; the model is immutable afterwards and safe to share
// across concurrent inference tasks.
type Model struct {
	topics    *mat.Dense // V x K, column k is a distribution over terms
	logTopics *mat.Dense // K x V, log of the transposed topic matrix
	prior     []float64  // K, positive
}

// NewModel builds a model from a K-length positive prior and a V x K
// topic-word matrix. It fails with a dimension error when the prior
// length does not match the matrix's topic count.
func NewModel(prior []float64, topics *mat.Dense) (*Model, error) {
	v, k := topics.Dims()
	if len(prior) != k {
		metrics.DimensionErrorsTotal.WithLabelValues("new_model").Inc()
		return nil, errors.NewDimensionError("new_model",
			fmt.Sprintf("prior length %d does not match topic count %d", len(prior), k))
	}
	for i, a := range prior {
		if a <= 0 {
			return nil, errors.NewValidationError("new_model",
				fmt.Sprintf("prior[%d] = %g, must be positive", i, a))
		}
	}

	m := &Model{
		topics:    mat.DenseCopyOf(topics),
		logTopics: mat.NewDense(k, v, nil),
		prior:     append([]float64(nil), prior...),
	}
	for t := 0; t < k; t++ {
		row := m.logTopics.RawRowView(t)
		for w := 0; w < v; w++ {
			row[w] = math.Log(topics.At(w, t))
		}
	}
	return m, nil
}

// NewSymmetricModel is the scalar-prior form of NewModel: it expands
// alpha to every topic.
func NewSymmetricModel(alpha float64, topics *mat.Dense) (*Model, error) {
	_, k := topics.Dims()
	prior := make([]float64, k)
	for i := range prior {
		prior[i] = alpha
	}
	return NewModel(prior, topics)
}

// NumTopics returns K.
func (m *Model) NumTopics() int {
	_, k := m.topics.Dims()
	return k
}

// NumTerms returns the vocabulary size V.
func (m *Model) NumTerms() int {
	v, _ := m.topics.Dims()
	return v
}

// Prior returns the Dirichlet prior parameter of topic t.
func (m *Model) Prior(t int) float64 {
	return m.prior[t]
}

// LogProb returns log P(term w | topic t) from the precomputed table.
func (m *Model) LogProb(t, w int) float64 {
	return m.logTopics.At(t, w)
}
