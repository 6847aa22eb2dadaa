package censoredmle

// CategorySummary reports per-category diagnostics derived from a fit
type CategorySummary struct {
	Category      string             `json:"category"`
	ObservedMean  float64            `json:"observed_mean"`  // mean of the final working column, imputations included
	CensoredShare float64            `json:"censored_share"` // fraction of cells at or below the detection threshold
	Threshold     float64            `json:"threshold"`
	Sensitivity   float64            `json:"sensitivity"` // fitted beta
	Baselines     map[string]float64 `json:"baselines"`   // event level -> fitted intercept
	Specific      bool               `json:"specific"`
}

// Summarize derives per-category diagnostics from a fit result
func Summarize(result *FitResult) []CategorySummary {
	n := len(result.Imputed)
	p := len(result.Params.Beta)

	summaries := make([]CategorySummary, p)
	for j := 0; j < p; j++ {
		// Observed cells sit strictly above their threshold and imputed
		// cells at or below it, so the mask is recoverable from the final
		// matrix
		total := 0.0
		censored := 0
		for i := 0; i < n; i++ {
			total += result.Imputed[i][j]
			if result.Imputed[i][j] <= result.Thresholds[j] {
				censored++
			}
		}

		baselines := make(map[string]float64, len(result.EventLevels))
		for e, level := range result.EventLevels {
			baselines[level] = result.Params.Alpha[e][j]
		}

		summaries[j] = CategorySummary{
			Category:      result.Categories[j],
			ObservedMean:  total / float64(n),
			CensoredShare: float64(censored) / float64(n),
			Threshold:     result.Thresholds[j],
			Sensitivity:   result.Params.Beta[j],
			Baselines:     baselines,
			Specific:      result.Specific[j],
		}
	}

	return summaries
}
