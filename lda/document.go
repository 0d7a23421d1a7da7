package lda

import (
	"fmt"

	"github.com/23skdu/varlda/internal/errors"
)

// Document is a sparse bag of words: distinct term ids paired with
// non-negative counts. Immutable once constructed.
type Document struct {
	terms  []int
	counts []int
	total  int
}

// NewDocument validates and builds a document from parallel term and
// count slices. Term ids must be unique within the document.
func NewDocument(terms, counts []int) (*Document, error) {
	if len(terms) != len(counts) {
		return nil, errors.NewDimensionError("new_document",
			fmt.Sprintf("terms length %d does not match counts length %d", len(terms), len(counts)))
	}
	if len(terms) == 0 {
		return nil, errors.NewValidationError("new_document", "document is empty")
	}

	seen := make(map[int]struct{}, len(terms))
	total := 0
	for i, w := range terms {
		if counts[i] < 0 {
			return nil, errors.NewValidationError("new_document",
				fmt.Sprintf("counts[%d] = %d, must be non-negative", i, counts[i]))
		}
		if _, dup := seen[w]; dup {
			return nil, errors.NewValidationError("new_document",
				fmt.Sprintf("term %d appears more than once", w))
		}
		seen[w] = struct{}{}
		total += counts[i]
	}

	return &Document{
		terms:  append([]int(nil), terms...),
		counts: append([]int(nil), counts...),
		total:  total,
	}, nil
}

// Len returns the number of distinct terms.
func (d *Document) Len() int {
	return len(d.terms)
}

// Total returns the token count, the sum of all term counts.
func (d *Document) Total() int {
	return d.total
}

// Term returns the vocabulary id of the i-th distinct term.
func (d *Document) Term(i int) int {
	return d.terms[i]
}

// Count returns the occurrence count of the i-th distinct term.
func (d *Document) Count(i int) int {
	return d.counts[i]
}
