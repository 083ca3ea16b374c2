// Package loans provides common loan processing utilities.
package loans

import (
	"math"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Payment holds the values for a given payment.
type Payment struct {
	Period             int
	Principal          float64
	Interest           float64
	RemainingPrincipal float64
}

// PeriodicRate converts an annual percentage rate into a monthly fraction.
func PeriodicRate(annualInterestRate float64) float64 {
	return annualInterestRate / constants.PercentageMultiplier / constants.MonthsPerYear
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula, rounded to cents.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}

	periodicInterestRate := PeriodicRate(annualInterestRate)
	if periodicInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return mathutil.Round(principal / float64(termMonths))
	}

	power := math.Pow(1+periodicInterestRate, float64(termMonths))
	payment := principal * periodicInterestRate * power / (power - 1)
	if !mathutil.IsFinite(payment) {
		// The growth factor overflowed; there is no amortizing payment.
		return 0
	}
	return mathutil.Round(payment)
}

// CalculateInterestPayment calculates the cent-rounded interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	if !mathutil.IsFinite(remainingPrincipal) || !mathutil.IsFinite(annualInterestRate) {
		return 0
	}
	interest := decimal.NewFromFloat(remainingPrincipal).Mul(decimal.NewFromFloat(PeriodicRate(annualInterestRate)))
	return mathutil.RoundDecimal(interest).InexactFloat64()
}

// GenerateSchedule amortizes principal over at most termMonths payments of
// monthlyPayment. Interest and principal are rounded to cents every period
// so the balances never carry fractional cents. The final payment absorbs
// whatever remains, which keeps the closing balance at exactly zero.
func GenerateSchedule(principal, annualInterestRate float64, termMonths int, monthlyPayment float64) []Payment {
	if principal <= 0 || termMonths <= 0 {
		return []Payment{}
	}
	if !mathutil.IsFinite(principal) || !mathutil.IsFinite(annualInterestRate) || !mathutil.IsFinite(monthlyPayment) {
		return []Payment{}
	}
	if monthlyPayment <= 0 {
		return []Payment{}
	}

	oneCent := decimal.New(1, -constants.DecimalPlaces)
	payment := decimal.NewFromFloat(monthlyPayment)
	balance := decimal.NewFromFloat(principal)

	schedule := make([]Payment, 0, termMonths)
	for period := 1; period <= termMonths && balance.GreaterThan(oneCent); period++ {
		interest := decimal.NewFromFloat(CalculateInterestPayment(balance.InexactFloat64(), annualInterestRate))
		principalPart := mathutil.RoundDecimal(payment.Sub(interest))

		// Pay off the loan rather than leave a sub-cent residual, and never
		// let the scheduled term end with an outstanding balance.
		if balance.Sub(principalPart).LessThanOrEqual(oneCent) || period == termMonths {
			principalPart = balance
		}

		remaining := mathutil.RoundDecimal(decimal.Max(decimal.Zero, balance.Sub(principalPart)))

		schedule = append(schedule, Payment{
			Period:             period,
			Principal:          principalPart.InexactFloat64(),
			Interest:           interest.InexactFloat64(),
			RemainingPrincipal: remaining.InexactFloat64(),
		})
		balance = remaining
	}

	if last := len(schedule) - 1; last >= 0 && schedule[last].RemainingPrincipal < constants.CurrencyTolerance {
		schedule[last].RemainingPrincipal = 0
	}

	return schedule
}

// TotalInterest sums the interest of every payment exactly and rounds the
// result to cents.
func TotalInterest(schedule []Payment) float64 {
	total := decimal.Zero
	for _, payment := range schedule {
		total = total.Add(decimal.NewFromFloat(payment.Interest))
	}
	return mathutil.RoundDecimal(total).InexactFloat64()
}
