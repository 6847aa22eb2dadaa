package censoredmle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	request := censoredRequest()
	request.Categories = []string{"total_coliform", "hf183"}
	request.Specific = []bool{false, true}

	result, err := Fit(request)
	require.NoError(t, err)

	summaries := Summarize(result)
	require.Len(t, summaries, 2)

	first := summaries[0]
	assert.Equal(t, "total_coliform", first.Category)
	assert.Equal(t, 0.0, first.CensoredShare)
	assert.False(t, first.Specific)
	assert.InDelta(t, 35.0/6.0, first.ObservedMean, 1e-9)
	assert.Len(t, first.Baselines, 2)
	assert.Contains(t, first.Baselines, "a")
	assert.Contains(t, first.Baselines, "b")

	second := summaries[1]
	assert.Equal(t, "hf183", second.Category)
	assert.Equal(t, 1.0, second.CensoredShare)
	assert.True(t, second.Specific)
	assert.Equal(t, 0.0, second.Baselines["a"])
	assert.Equal(t, 0.0, second.Baselines["b"])
	assert.Equal(t, result.Params.Beta[1], second.Sensitivity)
}
