package censoredmle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaximizeImprovesLogLikelihood(t *testing.T) {
	s := testSolver()
	theta := s.layout.initial(s.specific)

	before := logLikelihood(s.data.values, theta, s.layout, s.events.Rows)
	after, err := s.maximize(theta, 1e-5)

	require.NoError(t, err)
	assert.Greater(t, after, before)
	assert.False(t, math.IsNaN(after))
}

func TestMaximizeIsStableAtItsOwnOptimum(t *testing.T) {
	s := testSolver()
	theta := s.layout.initial(s.specific)

	first, err := s.maximize(theta, 1e-5)
	require.NoError(t, err)

	// A second run from the optimized point must not lose ground
	second, err := s.maximize(theta, 1e-5)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, second, first-1e-9)
}

func TestMaximizeApproachesStationarity(t *testing.T) {
	s := testSolver()
	theta := s.layout.initial(s.specific)

	// Repeated calls mirror how the EM loop re-enters the maximizer; a
	// single call may stop early on an exhausted conjugate step
	for k := 0; k < 5; k++ {
		_, err := s.maximize(theta, 1e-12)
		require.NoError(t, err)
	}

	// The intercept component of the gradient is a sum of residuals; near
	// the optimum it must be small relative to the total count mass
	grad := score(s.data.values, theta, s.layout, s.events.Rows, s.specific)
	for event := 0; event < s.layout.numEvents; event++ {
		for j := 0; j < s.layout.numCategories; j++ {
			assert.Less(t, math.Abs(grad[s.layout.alphaAt(event, j)]), 2.0)
		}
	}
}

func TestMaximizeRejectsNonFiniteStart(t *testing.T) {
	s := testSolver()
	theta := s.layout.initial(s.specific)
	theta[0] = math.Inf(1) // degenerate intercept

	_, err := s.maximize(theta, 1e-5)
	assert.Error(t, err)
}
