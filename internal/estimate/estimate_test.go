package estimate

import (
	"errors"
	"testing"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

func TestGetEstimates(t *testing.T) {
	conf := config.Configuration{
		Scenarios: []config.Scenario{
			{
				Name: "Base", Active: true, HomePrice: 500000, DownPayment: 100000,
				LoanTermYears: 30, InterestRate: 6.5, PropertyTax: 6000,
				HomeInsurance: 1200, HoaFees: 200, ShowSchedule: true,
			},
			{Name: "Inactive", Active: false, HomePrice: 1, LoanTermYears: 3},
			{
				Name: "Zero rate", Active: true, HomePrice: 360000, DownPayment: 60000,
				LoanTermYears: 10,
			},
		},
	}

	results, err := GetEstimates(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetEstimates() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 estimates, got %d", len(results))
	}

	tests := []struct {
		name         string
		monthly      float64
		periods      int
		showSchedule bool
	}{
		{"Base", 3328.27, 360, true},
		{"Zero rate", 2500, 120, false},
	}
	for i, tt := range tests {
		got := results[i]
		if got.Name != tt.name {
			t.Errorf("estimate %d name = %q, expected %q", i, got.Name, tt.name)
		}
		if got.Results.TotalMonthlyPayment != tt.monthly {
			t.Errorf("%s monthly payment = %.2f, expected %.2f", tt.name, got.Results.TotalMonthlyPayment, tt.monthly)
		}
		if len(got.Results.Schedule) != tt.periods {
			t.Errorf("%s has %d periods, expected %d", tt.name, len(got.Results.Schedule), tt.periods)
		}
		if got.ShowSchedule != tt.showSchedule {
			t.Errorf("%s ShowSchedule = %v", tt.name, got.ShowSchedule)
		}
	}
}

func TestGetEstimatesRejectsInvalidScenario(t *testing.T) {
	conf := config.Configuration{
		Scenarios: []config.Scenario{
			{Name: "Good", Active: true, HomePrice: 300000, LoanTermYears: 30, InterestRate: 6},
			{Name: "Too cheap", Active: true, HomePrice: 5000, LoanTermYears: 30, InterestRate: 6},
		},
	}

	results, err := GetEstimates(nil, conf)
	if err == nil {
		t.Fatal("expected an error for the invalid scenario")
	}

	var inputErr *validation.InputError
	if !errors.As(err, &inputErr) {
		t.Errorf("expected a wrapped *validation.InputError, got %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected the valid scenario to be returned, got %d estimates", len(results))
	}
}

func TestGetEstimatesWithNoActiveScenarios(t *testing.T) {
	results, err := GetEstimates(nil, config.Configuration{})
	if err != nil {
		t.Fatalf("GetEstimates() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no estimates, got %d", len(results))
	}
}
