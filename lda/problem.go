package lda

import (
	"fmt"

	"github.com/23skdu/varlda/internal/errors"
)

// Problem is an immutable pairing of a Model and one Document. All
// engine primitives hang off it.
type Problem struct {
	model *Model
	doc   *Document
}

// NewProblem pairs a model with a document, rejecting term ids outside
// the model's vocabulary.
func NewProblem(m *Model, d *Document) (*Problem, error) {
	v := m.NumTerms()
	for i := 0; i < d.Len(); i++ {
		if w := d.Term(i); w < 0 || w >= v {
			return nil, errors.NewValidationError("new_problem",
				fmt.Sprintf("term id %d outside vocabulary [0, %d)", w, v))
		}
	}
	return &Problem{model: m, doc: d}, nil
}

// Model returns the problem's model.
func (p *Problem) Model() *Model {
	return p.model
}

// Document returns the problem's document.
func (p *Problem) Document() *Document {
	return p.doc
}
