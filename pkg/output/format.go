// Package output provides utilities for formatting and displaying mortgage estimates.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-calculator/internal/estimate"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ChartSlice is one bar of the monthly payment breakdown chart.
type ChartSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ChartData returns the four monthly payment components in display order.
func ChartData(results mortgage.Results) []ChartSlice {
	return []ChartSlice{
		{Name: "Principal & Interest", Value: results.MonthlyPrincipalAndInterest},
		{Name: "Property Tax", Value: results.MonthlyPropertyTax},
		{Name: "Home Insurance", Value: results.MonthlyHomeInsurance},
		{Name: "HOA Fees", Value: results.MonthlyHoaFees},
	}
}

// EstimateSentence summarizes the inputs and the monthly payment in one line.
func EstimateSentence(inputs mortgage.Inputs, results mortgage.Results) string {
	return fmt.Sprintf("Estimated monthly payment for a %s home with %s down at %s over %d years: %s per month.",
		format.Money(inputs.HomePrice), format.Money(inputs.DownPaymentValue),
		format.Percent(inputs.AnnualInterestRatePercent), inputs.LoanTermYears,
		format.Money(results.TotalMonthlyPayment))
}

// IllustrativeSentence is the payment line shown under generated defaults.
func IllustrativeSentence(results mortgage.Results) string {
	return fmt.Sprintf("Based on these illustrative assumptions, your estimated monthly payment would be approximately %s.",
		format.Money(results.TotalMonthlyPayment))
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []estimate.Estimate) error {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		in, r := result.Inputs, result.Results
		lines := []struct {
			label string
			value float64
		}{
			{"Home price", in.HomePrice},
			{"Down payment", in.DownPaymentValue},
			{"Loan amount", r.Principal},
			{"Principal & interest", r.MonthlyPrincipalAndInterest},
			{"Property tax", r.MonthlyPropertyTax},
			{"Home insurance", r.MonthlyHomeInsurance},
			{"HOA fees", r.MonthlyHoaFees},
			{"Monthly payment", r.TotalMonthlyPayment},
			{"Total interest", r.TotalInterest},
			{"Total cost", r.TotalCost},
		}

		if _, err := p.Fprintf(w, "--- Results for scenario %s ---\n", result.Name); err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := p.Fprintf(w, "%-20s | $%.2f\n", line.label, line.value); err != nil {
				return err
			}
		}
		if _, err := p.Fprintf(w, "%-20s | %d years at %s\n", "Term", in.LoanTermYears,
			format.Percent(in.AnnualInterestRatePercent)); err != nil {
			return err
		}
		if _, err := p.Fprintf(w, "%-20s | %s\n", "Paid off in", r.PayoffLabel); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, EstimateSentence(in, r)); err != nil {
			return err
		}

		if result.ShowSchedule && len(r.Schedule) > 0 {
			if _, err := fmt.Fprintf(w, "\nMonth | Principal | Interest | Balance\n_____ | _________ | ________ | _______\n"); err != nil {
				return err
			}
			for _, period := range r.Schedule {
				if _, err := p.Fprintf(w, "%d | $%.2f | $%.2f | $%.2f\n",
					period.Index, period.Principal, period.Interest, period.EndingBalance); err != nil {
					return err
				}
			}
		}

		if i < len(results)-1 {
			if _, err := fmt.Fprintf(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// CsvFormat outputs the amortization schedules in comma-separated value format.
func CsvFormat(w io.Writer, results []estimate.Estimate) error {
	_, err := io.WriteString(w, CsvString(results))
	return err
}

// CsvString renders the amortization schedules as CSV, one row per scenario
// and month.
func CsvString(results []estimate.Estimate) string {
	var b strings.Builder
	b.WriteString(`"scenario","month","principal","interest","balance"`)
	b.WriteString("\n")
	for _, result := range results {
		name := strings.ReplaceAll(result.Name, `"`, `""`)
		for _, period := range result.Results.Schedule {
			fmt.Fprintf(&b, `"%s","%d","%.2f","%.2f","%.2f"`+"\n",
				name, period.Index, period.Principal, period.Interest, period.EndingBalance)
		}
	}
	return b.String()
}
