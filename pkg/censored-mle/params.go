package censoredmle

import "gonum.org/v1/gonum/mat"

// paramLayout fixes the flattened parameter ordering
// [alpha (event-major, category-minor) | beta | gamma] of length d·p + p + n.
// The likelihood, score, and imputation all index through it, so the layout
// lives in exactly one place.
type paramLayout struct {
	numEvents     int // d
	numCategories int // p
	numObs        int // n
}

func (l paramLayout) len() int {
	return l.numEvents*l.numCategories + l.numCategories + l.numObs
}

func (l paramLayout) alphaAt(event, category int) int {
	return event*l.numCategories + category
}

func (l paramLayout) betaAt(category int) int {
	return l.numEvents*l.numCategories + category
}

func (l paramLayout) gammaAt(obs int) int {
	return l.numEvents*l.numCategories + l.numCategories + obs
}

// initial returns the neutral starting point: intercepts at 1 (0 for
// specific categories), sensitivities at 1, latent indices at 1.
func (l paramLayout) initial(specific []bool) []float64 {
	theta := make([]float64, l.len())
	for i := range theta {
		theta[i] = 1
	}
	for event := 0; event < l.numEvents; event++ {
		for category := 0; category < l.numCategories; category++ {
			if specific[category] {
				theta[l.alphaAt(event, category)] = 0
			}
		}
	}
	return theta
}

// split reshapes a flat parameter vector into its natural blocks
func (l paramLayout) split(theta []float64) (alpha *mat.Dense, beta, gamma []float64) {
	alpha = mat.NewDense(l.numEvents, l.numCategories, nil)
	for event := 0; event < l.numEvents; event++ {
		for category := 0; category < l.numCategories; category++ {
			alpha.Set(event, category, theta[l.alphaAt(event, category)])
		}
	}

	beta = make([]float64, l.numCategories)
	copy(beta, theta[l.numEvents*l.numCategories:l.numEvents*l.numCategories+l.numCategories])

	gamma = make([]float64, l.numObs)
	copy(gamma, theta[l.numEvents*l.numCategories+l.numCategories:])

	return alpha, beta, gamma
}
