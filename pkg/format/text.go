package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Percent renders a rate with at most two decimals: 6 -> "6%", 6.5 -> "6.50%".
func Percent(rate float64) string {
	rounded := decimal.NewFromFloat(rate).Round(2)
	if rounded.Equal(rounded.Truncate(0)) {
		return rounded.StringFixed(0) + "%"
	}
	return rounded.StringFixed(2) + "%"
}

// Duration renders a payoff duration such as "29 Years 11 Months", dropping
// zero components. Both components zero renders as "0 Months".
func Duration(years, months int) string {
	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", years, plural(years, "Year", "Years")))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", months, plural(months, "Month", "Months")))
	}
	if len(parts) == 0 {
		return "0 Months"
	}
	return strings.Join(parts, " ")
}

// SlugToTitle turns a hyphenated slug into title case ("new-york" -> "New York").
func SlugToTitle(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

func plural(n int, singular, many string) string {
	if n == 1 {
		return singular
	}
	return many
}
