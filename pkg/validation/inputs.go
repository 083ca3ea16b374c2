package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
)

// DownPaymentMode selects which down payment view is authoritative when
// syncing the percent and dollar forms.
type DownPaymentMode string

const (
	// DownPaymentPercent derives the dollar amount from the percentage.
	DownPaymentPercent DownPaymentMode = "percent"
	// DownPaymentDollar derives the percentage from the dollar amount.
	DownPaymentDollar DownPaymentMode = "dollar"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// InputError collects every field violation found in one set of inputs.
type InputError struct {
	Fields []FieldError
}

func (e *InputError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid mortgage inputs: " + strings.Join(msgs, "; ")
}

// ValidateInputs rejects inputs outside the accepted ranges. The returned
// error is an *InputError listing every violation, or nil.
func ValidateInputs(in mortgage.Inputs) error {
	var fields []FieldError
	check := func(field string, v, lo, hi float64) {
		switch {
		case !mathutil.IsFinite(v):
			fields = append(fields, FieldError{field, "must be a finite number"})
		case v < lo || v > hi:
			fields = append(fields, FieldError{field, fmt.Sprintf("must be between %s and %s",
				strconv.FormatFloat(lo, 'f', -1, 64), strconv.FormatFloat(hi, 'f', -1, 64))})
		}
	}

	check("homePrice", in.HomePrice, constants.MinHomePrice, constants.MaxHomePrice)
	switch {
	case !mathutil.IsFinite(in.DownPaymentValue):
		fields = append(fields, FieldError{"downPaymentValue", "must be a finite number"})
	case in.DownPaymentValue < 0:
		fields = append(fields, FieldError{"downPaymentValue", "must not be negative"})
	case mathutil.IsFinite(in.HomePrice) && in.DownPaymentValue > in.HomePrice:
		fields = append(fields, FieldError{"downPaymentValue", "must not exceed homePrice"})
	}
	if !IsLoanTerm(in.LoanTermYears) {
		fields = append(fields, FieldError{"loanTerm", fmt.Sprintf("must be one of %v", constants.LoanTerms)})
	}
	check("interestRate", in.AnnualInterestRatePercent, constants.MinInterestRate, constants.MaxInterestRate)
	check("propertyTax", in.AnnualPropertyTax, 0, constants.MaxPropertyTax)
	check("homeInsurance", in.AnnualHomeInsurance, 0, constants.MaxHomeInsurance)
	check("hoaFees", in.MonthlyHoaFee, 0, constants.MaxMonthlyHoaFees)

	if len(fields) > 0 {
		return &InputError{Fields: fields}
	}
	return nil
}

// ClampInputs forces every field into its accepted range. Non-finite values
// fall back to the field's minimum and the term snaps to the nearest
// supported term (ties go to the shorter term).
func ClampInputs(in mortgage.Inputs) mortgage.Inputs {
	clamp := func(v, lo, hi float64) float64 {
		if !mathutil.IsFinite(v) {
			return lo
		}
		return mathutil.Clamp(v, lo, hi)
	}

	in.HomePrice = clamp(in.HomePrice, constants.MinHomePrice, constants.MaxHomePrice)
	in.DownPaymentValue = clamp(in.DownPaymentValue, 0, in.HomePrice)
	in.LoanTermYears = NearestLoanTerm(in.LoanTermYears)
	in.AnnualInterestRatePercent = clamp(in.AnnualInterestRatePercent, constants.MinInterestRate, constants.MaxInterestRate)
	in.AnnualPropertyTax = clamp(in.AnnualPropertyTax, 0, constants.MaxPropertyTax)
	in.AnnualHomeInsurance = clamp(in.AnnualHomeInsurance, 0, constants.MaxHomeInsurance)
	in.MonthlyHoaFee = clamp(in.MonthlyHoaFee, 0, constants.MaxMonthlyHoaFees)
	return in
}

// IsLoanTerm reports whether years is a supported loan term.
func IsLoanTerm(years int) bool {
	for _, term := range constants.LoanTerms {
		if term == years {
			return true
		}
	}
	return false
}

// NearestLoanTerm returns the supported term closest to years.
func NearestLoanTerm(years int) int {
	best := constants.LoanTerms[0]
	for _, term := range constants.LoanTerms[1:] {
		if absInt(term-years) < absInt(best-years) {
			best = term
		}
	}
	return best
}

// SyncDownPayment keeps the percent and dollar views of a down payment
// consistent. The view named by mode wins and the other is derived from it.
func SyncDownPayment(homePrice, percent, dollar float64, mode DownPaymentMode) (float64, float64) {
	if !mathutil.IsFinite(homePrice) || homePrice <= 0 {
		return 0, 0
	}

	if mode == DownPaymentDollar {
		if !mathutil.IsFinite(dollar) {
			dollar = 0
		}
		derived := dollar / homePrice * constants.PercentageMultiplier
		return mathutil.Clamp(derived, 0, 100), mathutil.Clamp(dollar, 0, homePrice)
	}

	if !mathutil.IsFinite(percent) {
		percent = 0
	}
	derived := homePrice * percent / constants.PercentageMultiplier
	return mathutil.Clamp(percent, 0, 100), mathutil.Clamp(derived, 0, homePrice)
}

// SafeNumber parses s as a finite float, returning fallback otherwise.
func SafeNumber(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !mathutil.IsFinite(v) {
		return fallback
	}
	return v
}

// ParseFormattedNumber parses user-entered amounts such as "$1,234.50".
// Anything unparseable yields fallback.
func ParseFormattedNumber(s string, fallback float64) float64 {
	cleaned := strings.NewReplacer(",", "", "$", "").Replace(s)
	return SafeNumber(cleaned, fallback)
}

func absInt(n int) int {
	return int(math.Abs(float64(n)))
}
