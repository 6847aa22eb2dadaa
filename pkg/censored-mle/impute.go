package censoredmle

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// expectationStep builds the next working matrix: every censored cell is
// replaced by its conditional expected count under the current fit, given
// that the true value lies at or below the detection threshold. Observed
// cells keep their values.
func (s *Solver) expectationStep(alpha *mat.Dense, beta, gamma []float64) *mat.Dense {
	next := mat.DenseCopyOf(s.data.values)

	n, p := s.data.dims()
	for i := 0; i < n; i++ {
		event := s.events.Rows[i]
		for j := 0; j < p; j++ {
			if !s.data.censored[i][j] {
				continue
			}
			lambda := math.Exp(alpha.At(event, j) + beta[j]*gamma[i])
			next.Set(i, j, CensoredPoissonMean(lambda, s.data.thresholds[j]))
		}
	}

	return next
}
