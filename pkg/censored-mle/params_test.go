package censoredmle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamLayoutIndices(t *testing.T) {
	layout := paramLayout{numEvents: 2, numCategories: 3, numObs: 4}

	assert.Equal(t, 2*3+3+4, layout.len())

	// Alpha is event-major, category-minor, followed by beta then gamma
	assert.Equal(t, 0, layout.alphaAt(0, 0))
	assert.Equal(t, 2, layout.alphaAt(0, 2))
	assert.Equal(t, 3, layout.alphaAt(1, 0))
	assert.Equal(t, 5, layout.alphaAt(1, 2))
	assert.Equal(t, 6, layout.betaAt(0))
	assert.Equal(t, 8, layout.betaAt(2))
	assert.Equal(t, 9, layout.gammaAt(0))
	assert.Equal(t, 12, layout.gammaAt(3))
}

func TestParamLayoutInitial(t *testing.T) {
	layout := paramLayout{numEvents: 2, numCategories: 2, numObs: 3}
	theta := layout.initial([]bool{false, true})

	assert.Len(t, theta, layout.len())
	assert.Equal(t, 1.0, theta[layout.alphaAt(0, 0)])
	assert.Equal(t, 0.0, theta[layout.alphaAt(0, 1)])
	assert.Equal(t, 1.0, theta[layout.alphaAt(1, 0)])
	assert.Equal(t, 0.0, theta[layout.alphaAt(1, 1)])
	assert.Equal(t, 1.0, theta[layout.betaAt(1)])
	assert.Equal(t, 1.0, theta[layout.gammaAt(2)])
}

func TestParamLayoutSplit(t *testing.T) {
	layout := paramLayout{numEvents: 2, numCategories: 2, numObs: 2}
	theta := []float64{
		10, 11, // alpha event 0
		20, 21, // alpha event 1
		1, 2, // beta
		5, 6, // gamma
	}

	alpha, beta, gamma := layout.split(theta)

	rows, cols := alpha.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 10.0, alpha.At(0, 0))
	assert.Equal(t, 21.0, alpha.At(1, 1))
	assert.Equal(t, []float64{1, 2}, beta)
	assert.Equal(t, []float64{5, 6}, gamma)

	// Split copies: mutating the blocks must not touch the flat vector
	beta[0] = -1
	assert.Equal(t, 1.0, theta[layout.betaAt(0)])
}
