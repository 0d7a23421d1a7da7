package lda

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/23skdu/varlda/internal/errors"
)

// RandDoc draws a synthetic document of exactly length tokens from the
// model's topics mixed by theta. Per-word probabilities are topics dot
// theta; the multinomial counts come back as a sparse document with
// ascending term ids and strictly positive counts. Used for test and
// simulation data, not by inference.
func RandDoc(m *Model, theta []float64, length int, rng *rand.Rand) (*Document, error) {
	if len(theta) != m.NumTopics() {
		return nil, errors.NewDimensionError("rand_doc",
			fmt.Sprintf("theta length %d does not match topic count %d", len(theta), m.NumTopics()))
	}
	if length <= 0 {
		return nil, errors.NewValidationError("rand_doc",
			fmt.Sprintf("length = %d, must be positive", length))
	}

	v := m.NumTerms()
	var probs mat.VecDense
	probs.MulVec(m.topics, mat.NewVecDense(len(theta), theta))

	cum := make([]float64, v)
	sum := 0.0
	for w := 0; w < v; w++ {
		sum += probs.AtVec(w)
		cum[w] = sum
	}

	counts := make([]int, v)
	for i := 0; i < length; i++ {
		w := sort.SearchFloat64s(cum, rng.Float64()*sum)
		if w >= v {
			w = v - 1
		}
		counts[w]++
	}

	var terms, docCounts []int
	for w := 0; w < v; w++ {
		if counts[w] > 0 {
			terms = append(terms, w)
			docCounts = append(docCounts, counts[w])
		}
	}
	return NewDocument(terms, docCounts)
}
