package censoredmle

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// The likelihood and score treat the current contents of the working matrix
// as ground truth, imputed values included. Censorship is the EM loop's
// responsibility, not the oracle's.

// logLikelihood computes the joint Poisson log-likelihood of the data under
// a flat parameter vector. The cell mean is exp(alpha[e(i)][j] + beta[j]·gamma[i]).
func logLikelihood(data *mat.Dense, theta []float64, layout paramLayout, rowEvent []int) float64 {
	ll := 0.0
	for i := 0; i < layout.numObs; i++ {
		event := rowEvent[i]
		gamma := theta[layout.gammaAt(i)]
		for j := 0; j < layout.numCategories; j++ {
			eta := theta[layout.alphaAt(event, j)] + theta[layout.betaAt(j)]*gamma
			y := data.At(i, j)
			logGamma, _ := math.Lgamma(y + 1)
			ll += y*eta - math.Exp(eta) - logGamma
		}
	}
	return ll
}

// score computes the analytic gradient of logLikelihood with respect to
// every parameter. Intercept components of specific categories are forced
// to zero, which keeps those intercepts pinned without a constrained
// optimizer.
func score(data *mat.Dense, theta []float64, layout paramLayout, rowEvent []int, specific []bool) []float64 {
	grad := make([]float64, layout.len())

	for i := 0; i < layout.numObs; i++ {
		event := rowEvent[i]
		gamma := theta[layout.gammaAt(i)]
		for j := 0; j < layout.numCategories; j++ {
			beta := theta[layout.betaAt(j)]
			lambda := math.Exp(theta[layout.alphaAt(event, j)] + beta*gamma)
			residual := data.At(i, j) - lambda

			if !specific[j] {
				grad[layout.alphaAt(event, j)] += residual
			}
			grad[layout.betaAt(j)] += gamma * residual
			grad[layout.gammaAt(i)] += beta * residual
		}
	}

	return grad
}
