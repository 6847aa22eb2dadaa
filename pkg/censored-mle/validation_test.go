package censoredmle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() FitRequest {
	return FitRequest{
		Counts:     [][]float64{{4, 1}, {6, 2}},
		Thresholds: []float64{0, 0},
		Events:     []string{"a", "b"},
	}
}

func TestValidateRequestAcceptsValidInput(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequestEmptyCounts(t *testing.T) {
	request := validRequest()
	request.Counts = nil

	err := validateRequest(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counts")
}

func TestValidateRequestRaggedCounts(t *testing.T) {
	request := validRequest()
	request.Counts = [][]float64{{4, 1}, {6}}

	err := validateRequest(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counts[1]")
}

func TestValidateRequestNegativeCount(t *testing.T) {
	request := validRequest()
	request.Counts[1][0] = -3

	err := validateRequest(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestValidateRequestThresholdMismatch(t *testing.T) {
	request := validRequest()
	request.Thresholds = []float64{0}

	err := validateRequest(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thresholds")
}

func TestValidateRequestEventMismatch(t *testing.T) {
	request := validRequest()
	request.Events = []string{"a"}

	err := validateRequest(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "events")
}

func TestValidateRequestSpecificMismatch(t *testing.T) {
	request := validRequest()
	request.Specific = []bool{true}

	err := validateRequest(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "specific")
}

func TestValidateRequestBadSettings(t *testing.T) {
	request := validRequest()
	request.Options.Settings = &EMSettings{
		StartTolerance: 1e-5,
		ToleranceFloor: 1e-16,
		InitialStep:    1,
		StepShrink:     1.2, // must be below 1
		MaxOuterRounds: 100,
	}

	err := validateRequest(request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step_shrink")
}

func TestValidateRequestCollectsMultipleErrors(t *testing.T) {
	request := validRequest()
	request.Thresholds = []float64{0}
	request.Events = []string{"a"}

	err := validateRequest(request)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs.Errors, 2)
}

func TestFitFailsFastOnInvalidInput(t *testing.T) {
	request := validRequest()
	request.Thresholds = nil

	result, err := Fit(request)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request")
}
