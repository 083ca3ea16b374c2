// Package estimate defines the data structures related to a given estimate and
// includes functions for computing the estimates.
package estimate

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

// Estimate holds all information related to a specific scenario's estimate.
type Estimate struct {
	Name         string
	Inputs       mortgage.Inputs
	Results      mortgage.Results
	ShowSchedule bool
}

// GetEstimates computes the Estimates for all active Scenarios.
func GetEstimates(logger *zap.Logger, conf config.Configuration) ([]Estimate, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	active := conf.ActiveScenarios()
	if skipped := len(conf.Scenarios) - len(active); skipped > 0 {
		logger.Debug(fmt.Sprintf("skipping %d inactive scenarios", skipped),
			zap.String("op", "estimate.GetEstimates"),
		)
	}

	var results []Estimate
	for _, scenario := range active {
		inputs := scenario.Inputs()
		if err := validation.ValidateInputs(inputs); err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		result := mortgage.Compute(inputs)
		logger.Debug("computed scenario",
			zap.String("op", "estimate.GetEstimates"),
			zap.String("scenario", scenario.Name),
			zap.Float64("monthlyPayment", result.TotalMonthlyPayment),
			zap.Int("periods", len(result.Schedule)),
		)

		results = append(results, Estimate{
			Name:         scenario.Name,
			Inputs:       inputs,
			Results:      result,
			ShowSchedule: scenario.ShowSchedule,
		})
	}

	return results, nil
}
