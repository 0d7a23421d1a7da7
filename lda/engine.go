package lda

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext"

	"github.com/23skdu/varlda/internal/errors"
	"github.com/23skdu/varlda/internal/metrics"
)

// Compatible verifies that sol's buffers can serve this problem: Gamma
// must match the topic count and Phi must have a row for every distinct
// term. It guards buffer reuse across mismatched documents.
func (p *Problem) Compatible(sol *Solution) error {
	k := p.model.NumTopics()
	if len(sol.Gamma) != k {
		metrics.DimensionErrorsTotal.WithLabelValues("compatible").Inc()
		return errors.NewDimensionError("compatible",
			fmt.Sprintf("gamma length %d does not match topic count %d", len(sol.Gamma), k))
	}
	if sol.maxTerms < p.doc.Len() {
		metrics.DimensionErrorsTotal.WithLabelValues("compatible").Inc()
		return errors.NewDimensionError("compatible",
			fmt.Sprintf("phi capacity %d is below distinct-term count %d", sol.maxTerms, p.doc.Len()))
	}
	return nil
}

// Initialize seeds gamma with the prior plus an even share of the
// document's token mass, then refines the gamma-dependent state.
func (p *Problem) Initialize(sol *Solution) error {
	if err := p.Compatible(sol); err != nil {
		return err
	}
	share := float64(p.doc.Total()) / float64(p.model.NumTopics())
	for t := range sol.Gamma {
		sol.Gamma[t] = p.model.prior[t] + share
	}
	p.refine(sol)
	return nil
}

// Update performs one coordinate-ascent sweep. Gamma consumes the
// previous sweep's tocweights before refine overwrites them; the order
// is load-bearing.
func (p *Problem) Update(sol *Solution) error {
	if err := p.Compatible(sol); err != nil {
		return err
	}
	for t := range sol.Gamma {
		sol.Gamma[t] = p.model.prior[t] + sol.TocWeights[t]
	}
	p.refine(sol)
	return nil
}

// refine recomputes ElogTheta, Phi and TocWeights from the current
// Gamma. Phi rows are normalized in the log domain so near-zero word
// probabilities cannot underflow the simplex.
func (p *Problem) refine(sol *Solution) {
	k := p.model.NumTopics()

	digammaSum := mathext.Digamma(floats.Sum(sol.Gamma))
	for t := 0; t < k; t++ {
		sol.ElogTheta[t] = mathext.Digamma(sol.Gamma[t]) - digammaSum
	}

	for t := range sol.TocWeights {
		sol.TocWeights[t] = 0
	}
	for i := 0; i < p.doc.Len(); i++ {
		w := p.doc.Term(i)
		row := sol.Phi.RawRowView(i)
		for t := 0; t < k; t++ {
			row[t] = sol.ElogTheta[t] + p.model.logTopics.At(t, w)
		}
		norm := floats.LogSumExp(row)

		count := float64(p.doc.Count(i))
		for t := 0; t < k; t++ {
			row[t] = math.Exp(row[t] - norm)
			sol.TocWeights[t] += row[t] * count
		}
	}
}

// Objective evaluates the evidence lower bound of the current state. It
// is non-decreasing across Update sweeps for a fixed model and document.
func (p *Problem) Objective(sol *Solution) float64 {
	k := p.model.NumTopics()

	var elbo float64
	// E[log p(theta | prior)], dropping the constant log-Beta term.
	for t := 0; t < k; t++ {
		elbo += (p.model.prior[t] - 1) * sol.ElogTheta[t]
	}
	// E[log p(z | theta)]
	elbo += floats.Dot(sol.TocWeights, sol.ElogTheta)

	// E[log p(w | z)] and the categorical entropy of each phi row.
	// Exact zeros are skipped: 0 * log 0 and 0 * -Inf contribute nothing.
	for i := 0; i < p.doc.Len(); i++ {
		w := p.doc.Term(i)
		count := float64(p.doc.Count(i))
		row := sol.Phi.RawRowView(i)
		for t := 0; t < k; t++ {
			if row[t] == 0 {
				continue
			}
			elbo += count * row[t] * p.model.logTopics.At(t, w)
			elbo -= count * row[t] * math.Log(row[t])
		}
	}

	elbo += dirichletEntropy(sol.Gamma, sol.ElogTheta)
	return elbo
}

// dirichletEntropy computes H(Dirichlet(gamma)) using the identity
// psi(gamma_t) - psi(sum gamma) = elogtheta[t], which refine maintains.
func dirichletEntropy(gamma, elogtheta []float64) float64 {
	sumLg, _ := math.Lgamma(floats.Sum(gamma))
	h := -sumLg
	for t, g := range gamma {
		lg, _ := math.Lgamma(g)
		h += lg - (g-1)*elogtheta[t]
	}
	return h
}
