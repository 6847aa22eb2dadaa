package censoredmle

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonLogProb returns log P(X = y) for X ~ Poisson(lambda). Imputed
// cells carry real-valued y, so the factorial term is interpolated through
// the gamma function.
func PoissonLogProb(lambda, y float64) float64 {
	if lambda <= 0 {
		if y == 0 {
			return 0
		}
		return math.Inf(-1)
	}

	logGamma, _ := math.Lgamma(y + 1)
	return y*math.Log(lambda) - lambda - logGamma
}

// CensoredPoissonMean returns E[X | X <= T] for X ~ Poisson(lambda), where
// T is the floor of the detection threshold. This is the standard
// left-censored Poisson expectation lambda·F(T-1)/F(T) with F the Poisson
// CDF; it is always non-negative and never exceeds T.
func CensoredPoissonMean(lambda, threshold float64) float64 {
	t := math.Floor(threshold)
	if t < 1 || lambda <= 0 {
		return 0
	}

	dist := distuv.Poisson{Lambda: lambda}
	total := dist.CDF(t)
	if total <= 0 {
		// lambda is so far above the threshold that the conditional mass
		// degenerates onto the threshold itself
		return t
	}
	return lambda * dist.CDF(t-1) / total
}

// PoissonSample generates a random draw from Poisson(lambda)
func PoissonSample(lambda float64, rng *rand.Rand) int {
	if lambda <= 0 {
		return 0
	}

	// Inverse transform sampling for small lambda
	if lambda < 12 {
		limit := math.Exp(-lambda)
		k := 0
		product := 1.0

		for product > limit {
			k++
			product *= rng.Float64()
		}
		return k - 1
	}

	// Normal approximation for large lambda
	return int(math.Max(0, rng.NormFloat64()*math.Sqrt(lambda)+lambda+0.5))
}
