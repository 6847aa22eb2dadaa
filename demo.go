package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	censoredmle "github.com/jhw/go-censored-mle/pkg/censored-mle"
)

func main() {
	// Command line flags
	var (
		dataFile  = flag.String("data", "fixtures/counts.json", "Path to dataset JSON file")
		outFile   = flag.String("out", "", "Optional path to write the fit result JSON")
		generate  = flag.Bool("generate", false, "Generate a synthetic example dataset to fixtures/counts.json and exit")
		seed      = flag.Int64("seed", 42, "Random seed for dataset generation")
		verbose   = flag.Bool("verbose", false, "Enable progress output during fitting")
		maxRounds = flag.Int("max-rounds", 200, "Maximum EM outer rounds")
		tolerance = flag.Float64("tolerance", 1e-5, "Starting inner convergence tolerance")
	)
	flag.Parse()

	fmt.Printf("Censored Poisson MLE Demo\n")
	fmt.Printf("=========================\n\n")

	// Handle generate flag
	if *generate {
		if err := writeExampleDataset("fixtures/counts.json", *seed); err != nil {
			log.Fatalf("Error generating dataset: %v", err)
		}
		fmt.Printf("Wrote synthetic dataset to fixtures/counts.json\n")
		return
	}

	dataset, err := loadDataset(*dataFile)
	if err != nil {
		log.Fatalf("Error loading dataset: %v (run with -generate first?)", err)
	}

	fmt.Printf("Loaded %d observations x %d categories, %d event groups\n\n",
		len(dataset.Counts), len(dataset.Thresholds),
		len(censoredmle.ExtractEventLevels(dataset.Events)))

	settings := censoredmle.DefaultEMSettings()
	settings.MaxOuterRounds = *maxRounds
	settings.StartTolerance = *tolerance

	result, err := censoredmle.Fit(dataset.Request(censoredmle.FitOptions{
		Settings: settings,
		Verbose:  *verbose,
	}))
	if err != nil {
		log.Fatalf("Fit failed: %v", err)
	}

	printResult(result)

	if *outFile != "" {
		if err := writeJSON(*outFile, result); err != nil {
			log.Fatalf("Error writing result: %v", err)
		}
		fmt.Printf("\nWrote result to %s\n", *outFile)
	}
}

// loadDataset reads a dataset JSON file
func loadDataset(path string) (*censoredmle.SimulatedDataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var dataset censoredmle.SimulatedDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("decoding dataset JSON from %s: %w", path, err)
	}
	return &dataset, nil
}

// printResult prints a human-readable fit summary
func printResult(result *censoredmle.FitResult) {
	status := "did not converge"
	if result.Params.Converged {
		status = "converged"
	}
	fmt.Printf("Fit %s after %d rounds (log-likelihood %.4f, %d censored cells, %v)\n\n",
		status, result.Params.Rounds, result.Params.LogLikelihood,
		result.CensoredCells, result.ProcessingTime)

	fmt.Printf("%-16s %10s %10s %10s  %s\n",
		"Category", "Mean", "Censored", "Beta", "Baselines")
	for _, summary := range censoredmle.Summarize(result) {
		fmt.Printf("%-16s %10.3f %9.0f%% %10.3f  ",
			summary.Category, summary.ObservedMean,
			100*summary.CensoredShare, summary.Sensitivity)
		for _, level := range result.EventLevels {
			fmt.Printf("%s=%.3f ", level, summary.Baselines[level])
		}
		fmt.Printf("\n")
	}
}

// writeJSON writes a value as indented JSON
func writeJSON(path string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
