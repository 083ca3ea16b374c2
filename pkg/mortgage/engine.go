// Package mortgage computes the monthly payment breakdown and the full
// amortization schedule of a single fixed-rate, fixed-term loan.
package mortgage

import (
	"math"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/loans"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Inputs holds the loan parameters. Callers are expected to validate or
// clamp them first; Compute never rejects a value.
type Inputs struct {
	HomePrice                 float64 `json:"homePrice" yaml:"homePrice"`
	DownPaymentValue          float64 `json:"downPaymentValue" yaml:"downPaymentValue"`
	LoanTermYears             int     `json:"loanTerm" yaml:"loanTerm"`
	AnnualInterestRatePercent float64 `json:"interestRate" yaml:"interestRate"`
	AnnualPropertyTax         float64 `json:"propertyTax" yaml:"propertyTax"`
	AnnualHomeInsurance       float64 `json:"homeInsurance" yaml:"homeInsurance"`
	MonthlyHoaFee             float64 `json:"hoaFees" yaml:"hoaFees"`
}

// Period is one paid month of the schedule.
type Period struct {
	Index         int     `json:"month"`
	Principal     float64 `json:"principal"`
	Interest      float64 `json:"interest"`
	EndingBalance float64 `json:"remainingBalance"`
}

// Results is the output of Compute.
type Results struct {
	Principal                   float64  `json:"principal"`
	MonthlyPrincipalAndInterest float64  `json:"monthlyPrincipalAndInterest"`
	MonthlyPropertyTax          float64  `json:"monthlyPropertyTax"`
	MonthlyHomeInsurance        float64  `json:"monthlyHomeInsurance"`
	MonthlyHoaFees              float64  `json:"monthlyHoaFees"`
	TotalMonthlyPayment         float64  `json:"monthlyPayment"`
	TotalInterest               float64  `json:"totalInterest"`
	TotalCost                   float64  `json:"totalCost"`
	PayoffLabel                 string   `json:"payoffLabel"`
	Schedule                    []Period `json:"amortizationSchedule"`
}

// NumberOfPeriods returns the scheduled number of monthly payments.
func (in Inputs) NumberOfPeriods() int {
	if in.LoanTermYears <= 0 {
		return 0
	}
	return in.LoanTermYears * constants.MonthsPerYear
}

// Principal returns the amount financed, never negative.
func (in Inputs) Principal() float64 {
	return math.Max(0, in.HomePrice-in.DownPaymentValue)
}

// Compute amortizes the loan described by inputs. It is deterministic and
// safe for concurrent use. Non-finite monetary inputs are treated as zero.
func Compute(inputs Inputs) Results {
	in := sanitize(inputs)

	principal := mathutil.Round(in.Principal())
	termMonths := in.NumberOfPeriods()

	payment := loans.CalculateMonthlyPayment(principal, in.AnnualInterestRatePercent, termMonths)
	tax := mathutil.Round(in.AnnualPropertyTax / constants.MonthsPerYear)
	insurance := mathutil.Round(in.AnnualHomeInsurance / constants.MonthsPerYear)
	hoa := mathutil.Round(in.MonthlyHoaFee)

	totalMonthly := mathutil.Cents(payment).
		Add(mathutil.Cents(tax)).
		Add(mathutil.Cents(insurance)).
		Add(mathutil.Cents(hoa))

	payments := loans.GenerateSchedule(principal, in.AnnualInterestRatePercent, termMonths, payment)
	schedule := make([]Period, len(payments))
	for i, p := range payments {
		schedule[i] = Period{
			Index:         p.Period,
			Principal:     p.Principal,
			Interest:      p.Interest,
			EndingBalance: p.RemainingPrincipal,
		}
	}
	totalInterest := loans.TotalInterest(payments)

	// Priced off the scheduled payment rather than the summed periods; the
	// two can differ by the final-period correction.
	years := decimal.NewFromInt(int64(in.LoanTermYears))
	periods := decimal.NewFromInt(int64(termMonths))
	totalCost := decimal.NewFromFloat(in.DownPaymentValue).
		Add(mathutil.Cents(payment).Mul(periods)).
		Add(mathutil.Cents(totalInterest)).
		Add(decimal.NewFromFloat(in.AnnualPropertyTax).Mul(years)).
		Add(decimal.NewFromFloat(in.AnnualHomeInsurance).Mul(years)).
		Add(decimal.NewFromFloat(in.MonthlyHoaFee).Mul(periods))

	return Results{
		Principal:                   principal,
		MonthlyPrincipalAndInterest: payment,
		MonthlyPropertyTax:          tax,
		MonthlyHomeInsurance:        insurance,
		MonthlyHoaFees:              hoa,
		TotalMonthlyPayment:         mathutil.RoundDecimal(totalMonthly).InexactFloat64(),
		TotalInterest:               totalInterest,
		TotalCost:                   mathutil.RoundDecimal(totalCost).InexactFloat64(),
		PayoffLabel:                 PayoffLabel(len(schedule)),
		Schedule:                    schedule,
	}
}

// PayoffLabel renders a number of months as "<Y> Years <M> Months".
func PayoffLabel(months int) string {
	if months < 0 {
		months = 0
	}
	return format.Duration(months/constants.MonthsPerYear, months%constants.MonthsPerYear)
}

func sanitize(in Inputs) Inputs {
	finite := func(v float64) float64 {
		if !mathutil.IsFinite(v) {
			return 0
		}
		return v
	}
	in.HomePrice = finite(in.HomePrice)
	in.DownPaymentValue = finite(in.DownPaymentValue)
	in.AnnualInterestRatePercent = finite(in.AnnualInterestRatePercent)
	in.AnnualPropertyTax = finite(in.AnnualPropertyTax)
	in.AnnualHomeInsurance = finite(in.AnnualHomeInsurance)
	in.MonthlyHoaFee = finite(in.MonthlyHoaFee)
	if in.LoanTermYears < 0 {
		in.LoanTermYears = 0
	}
	return in
}
