// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// ConfigValidator produces non-fatal warnings for a set of scenarios.
type ConfigValidator struct {
	Scenarios []ScenarioConfig
}

// ScenarioConfig is the subset of a scenario the validator inspects.
type ScenarioConfig struct {
	Name               string
	Active             bool
	HomePrice          float64
	DownPayment        float64
	DownPaymentPercent float64
	LoanTermYears      int
	InterestRate       float64
}

// ValidateDownPayment warns when the down payment forms conflict or leave
// nothing to finance.
func ValidateDownPayment(name string, homePrice, dollar, percent float64) []string {
	var warnings []string

	if dollar > 0 && percent > 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' sets both downPayment and downPaymentPercent - downPayment takes precedence",
			name))
	}

	effective := dollar
	if effective == 0 {
		effective = mathutil.ApplyPercentage(homePrice, percent)
	}
	if homePrice > 0 && effective >= homePrice {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' down payment covers the full home price - nothing is financed",
			name))
	}

	return warnings
}

// ValidateAll validates every scenario and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if len(cv.Scenarios) == 0 {
		return []string{"No scenarios defined"}
	}

	active := 0
	seen := make(map[string]bool)
	for _, scenario := range cv.Scenarios {
		if seen[scenario.Name] {
			warnings = append(warnings, fmt.Sprintf("Scenario name '%s' is used more than once", scenario.Name))
		}
		seen[scenario.Name] = true

		if !scenario.Active {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' is inactive and will be skipped", scenario.Name))
			continue
		}
		active++

		warnings = append(warnings, ValidateDownPayment(scenario.Name, scenario.HomePrice,
			scenario.DownPayment, scenario.DownPaymentPercent)...)

		if !IsLoanTerm(scenario.LoanTermYears) {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' loan term %d is not supported - using %d years",
				scenario.Name, scenario.LoanTermYears, NearestLoanTerm(scenario.LoanTermYears)))
		}

		if scenario.InterestRate == 0 {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' has a 0%% interest rate - principal is repaid in equal installments",
				scenario.Name))
		}
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios - nothing will be calculated")
	}

	return warnings
}
