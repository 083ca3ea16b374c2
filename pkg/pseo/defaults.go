package pseo

import (
	"math"
	"unicode/utf16"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
)

// StableHash is a 31-multiplier rolling hash over the UTF-16 code units of
// s, wrapped to 32 bits and made non-negative. It never changes between
// releases, so pages derived from it stay put.
func StableHash(s string) int {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	return int(math.Abs(float64(h)))
}

// CalculatorDefaults are the inputs the calculator opens with.
func CalculatorDefaults() mortgage.Inputs {
	return mortgage.Inputs{
		HomePrice:                 500000,
		DownPaymentValue:          100000,
		LoanTermYears:             30,
		AnnualInterestRatePercent: 6.5,
		AnnualPropertyTax:         6000,
		AnnualHomeInsurance:       1200,
		MonthlyHoaFee:             200,
	}
}

// DefaultInputs derives illustrative but stable inputs for a rate page.
func DefaultInputs(state, tier string) mortgage.Inputs {
	h := StableHash(state + "-" + tier)

	homePrice := mathutil.Clamp(300000+float64(h%70)*10000, 100000, 2000000)
	downPercent := mathutil.Clamp(10+float64(h%20)*2, 5, 50)
	rate := mathutil.Clamp(4+float64(h%40)*0.125, 3, 10)
	tax := mathutil.Clamp(homePrice/100+float64(h%10)*500, 0, 50000)
	insurance := mathutil.Clamp(1000+float64(h%20)*100, 500, 5000)
	hoa := mathutil.Clamp(float64(h%10)*50, 0, 500)

	return mortgage.Inputs{
		HomePrice:                 homePrice,
		DownPaymentValue:          math.Round(homePrice * downPercent / constants.PercentageMultiplier),
		LoanTermYears:             constants.LoanTerms[h%len(constants.LoanTerms)],
		AnnualInterestRatePercent: rate,
		AnnualPropertyTax:         mathutil.Round(tax),
		AnnualHomeInsurance:       insurance,
		MonthlyHoaFee:             hoa,
	}
}

// SlugInputs are the inputs shown on a mortgage payment page: the slug's
// price and rate with 20% down over 30 years, property tax at 1.2% and
// insurance at 0.35% of the price.
func SlugInputs(parts SlugParts) mortgage.Inputs {
	price := float64(parts.PriceK) * 1000
	return mortgage.Inputs{
		HomePrice:                 price,
		DownPaymentValue:          mathutil.Round(price * 20 / constants.PercentageMultiplier),
		LoanTermYears:             30,
		AnnualInterestRatePercent: parts.Rate,
		AnnualPropertyTax:         mathutil.Round(price * 1.2 / constants.PercentageMultiplier),
		AnnualHomeInsurance:       mathutil.Round(price * 0.35 / constants.PercentageMultiplier),
		MonthlyHoaFee:             0,
	}
}
