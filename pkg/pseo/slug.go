package pseo

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// ErrInvalidSlug is returned by ParseSlug for malformed slugs.
var ErrInvalidSlug = errors.New("invalid mortgage payment slug")

// SlugParts are the components of a "500k-new-york-6-5" style slug.
type SlugParts struct {
	PriceK int     `json:"priceK"`
	Rate   float64 `json:"rate"`
	Region string  `json:"region"`
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeRegion lowercases a region name and joins its words with hyphens.
func NormalizeRegion(region string) string {
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(region), "-"), "-")
}

// GenerateSlug builds the slug for a price (in thousands), rate and region.
// The rate is written with one decimal, halves rounding up, and a hyphen
// for the point.
func GenerateSlug(priceK int, rate float64, region string) string {
	rateStr := strings.Replace(decimal.NewFromFloat(rate).StringFixed(1), ".", "-", 1)
	return fmt.Sprintf("%dk-%s-%s", priceK, NormalizeRegion(region), rateStr)
}

// ParseSlug is the inverse of GenerateSlug. A single trailing number is
// also accepted as a whole rate ("300k-texas-7"), but only when the region
// does not end in a number: "500k-area-51-7" reads as rate 51.7 and is
// rejected, so such regions need the canonical "500k-area-51-7-0".
func ParseSlug(slug string) (SlugParts, error) {
	parts := strings.Split(slug, "-")
	if len(parts) < 3 {
		return SlugParts{}, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	priceStr := parts[0]
	if !strings.HasSuffix(priceStr, "k") {
		return SlugParts{}, fmt.Errorf("%w: %q has no price", ErrInvalidSlug, slug)
	}
	priceK, err := strconv.Atoi(strings.TrimSuffix(priceStr, "k"))
	if err != nil || priceK <= 0 {
		return SlugParts{}, fmt.Errorf("%w: %q has no price", ErrInvalidSlug, slug)
	}

	rest := parts[1:]
	rateStr := rest[len(rest)-1]
	rest = rest[:len(rest)-1]
	if !isDigits(rateStr) {
		return SlugParts{}, fmt.Errorf("%w: %q has no valid rate", ErrInvalidSlug, slug)
	}
	if len(rest) >= 2 && isDigits(rest[len(rest)-1]) {
		rateStr = rest[len(rest)-1] + "." + rateStr
		rest = rest[:len(rest)-1]
	}
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil || rate < constants.MinInterestRate || rate > constants.MaxInterestRate {
		return SlugParts{}, fmt.Errorf("%w: %q has no valid rate", ErrInvalidSlug, slug)
	}

	region := strings.Join(rest, "-")
	if region == "" {
		return SlugParts{}, fmt.Errorf("%w: %q has no region", ErrInvalidSlug, slug)
	}

	return SlugParts{PriceK: priceK, Rate: rate, Region: region}, nil
}

// Slug renders the parts back into their canonical slug.
func (p SlugParts) Slug() string {
	return GenerateSlug(p.PriceK, p.Rate, p.Region)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
