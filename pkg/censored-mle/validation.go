package censoredmle

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError represents a single input validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation failures
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// validateRequest checks dimensions and values before any optimization runs.
// Dimension mismatches would otherwise only surface deep inside the
// likelihood evaluation as an obscure index error.
func validateRequest(request FitRequest) error {
	var errs []ValidationError

	n := len(request.Counts)
	if n == 0 {
		errs = append(errs, ValidationError{
			Field:   "counts",
			Message: "at least one observation row is required",
		})
		return ValidationErrors{Errors: errs}
	}

	p := len(request.Counts[0])
	if p == 0 {
		errs = append(errs, ValidationError{
			Field:   "counts",
			Message: "at least one category column is required",
		})
		return ValidationErrors{Errors: errs}
	}

	for i, row := range request.Counts {
		if len(row) != p {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("counts[%d]", i),
				Message: fmt.Sprintf("expected %d columns, got %d", p, len(row)),
			})
			continue
		}
		for j, value := range row {
			if math.IsNaN(value) || math.IsInf(value, 0) {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("counts[%d][%d]", i, j),
					Message: "count must be finite",
				})
			} else if value < 0 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("counts[%d][%d]", i, j),
					Message: fmt.Sprintf("count must be non-negative, got %g", value),
				})
			}
		}
	}

	if len(request.Thresholds) != p {
		errs = append(errs, ValidationError{
			Field:   "thresholds",
			Message: fmt.Sprintf("expected %d thresholds (one per category), got %d", p, len(request.Thresholds)),
		})
	} else {
		for j, threshold := range request.Thresholds {
			if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("thresholds[%d]", j),
					Message: fmt.Sprintf("threshold must be finite and non-negative, got %g", threshold),
				})
			}
		}
	}

	if len(request.Events) != n {
		errs = append(errs, ValidationError{
			Field:   "events",
			Message: fmt.Sprintf("expected %d event labels (one per observation), got %d", n, len(request.Events)),
		})
	}

	if len(request.Specific) != 0 && len(request.Specific) != p {
		errs = append(errs, ValidationError{
			Field:   "specific",
			Message: fmt.Sprintf("expected %d flags (one per category) or none, got %d", p, len(request.Specific)),
		})
	}

	if len(request.Categories) != 0 && len(request.Categories) != p {
		errs = append(errs, ValidationError{
			Field:   "categories",
			Message: fmt.Sprintf("expected %d labels (one per category) or none, got %d", p, len(request.Categories)),
		})
	}

	if settings := request.Options.Settings; settings != nil {
		errs = append(errs, validateSettings(settings)...)
	}

	if len(errs) > 0 {
		return ValidationErrors{Errors: errs}
	}

	return nil
}

// validateSettings checks user-supplied optimization settings
func validateSettings(settings *EMSettings) []ValidationError {
	var errs []ValidationError

	if settings.StartTolerance <= 0 {
		errs = append(errs, ValidationError{
			Field:   "settings.start_tolerance",
			Message: fmt.Sprintf("must be positive, got %g", settings.StartTolerance),
		})
	}
	if settings.ToleranceFloor <= 0 || settings.ToleranceFloor > settings.StartTolerance {
		errs = append(errs, ValidationError{
			Field:   "settings.tolerance_floor",
			Message: fmt.Sprintf("must be positive and at most the start tolerance, got %g", settings.ToleranceFloor),
		})
	}
	if settings.InitialStep <= 0 {
		errs = append(errs, ValidationError{
			Field:   "settings.initial_step",
			Message: fmt.Sprintf("must be positive, got %g", settings.InitialStep),
		})
	}
	if settings.StepShrink <= 0 || settings.StepShrink >= 1 {
		errs = append(errs, ValidationError{
			Field:   "settings.step_shrink",
			Message: fmt.Sprintf("must be strictly between 0 and 1, got %g", settings.StepShrink),
		})
	}
	if settings.MaxOuterRounds <= 0 {
		errs = append(errs, ValidationError{
			Field:   "settings.max_outer_rounds",
			Message: fmt.Sprintf("must be positive, got %d", settings.MaxOuterRounds),
		})
	}

	return errs
}
