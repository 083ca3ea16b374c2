package format

import (
	"math"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Small", 5.5, "$5.50"},
		{"Thousands", 1234.5, "$1,234.50"},
		{"Millions", 1808357.01, "$1,808,357.01"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Exactly three digits", 999.99, "$999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0"},
		{"Rounds down", 3328.27, "$3,328"},
		{"Rounds half up", 2.5, "$3"},
		{"Large", 1000000, "$1,000,000"},
		{"Under a thousand", 999.4, "$999"},
		{"Negative", -5, "-$5"},
		{"Not a number", math.NaN(), "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Money(tt.amount); got != tt.expected {
				t.Errorf("Money(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		rate     float64
		expected string
	}{
		{6, "6%"},
		{6.5, "6.50%"},
		{6.125, "6.13%"},
		{0, "0%"},
		{6.999, "7%"},
		{4.25, "4.25%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.rate); got != tt.expected {
			t.Errorf("Percent(%v) = %q, expected %q", tt.rate, got, tt.expected)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		years    int
		months   int
		expected string
	}{
		{0, 0, "0 Months"},
		{30, 0, "30 Years"},
		{1, 0, "1 Year"},
		{0, 1, "1 Month"},
		{29, 11, "29 Years 11 Months"},
		{1, 1, "1 Year 1 Month"},
		{0, 7, "7 Months"},
	}

	for _, tt := range tests {
		if got := Duration(tt.years, tt.months); got != tt.expected {
			t.Errorf("Duration(%d, %d) = %q, expected %q", tt.years, tt.months, got, tt.expected)
		}
	}
}

func TestSlugToTitle(t *testing.T) {
	tests := map[string]string{
		"new-york":       "New York",
		"texas":          "Texas",
		"north-CAROLINA": "North Carolina",
		"":               "",
	}

	for in, expected := range tests {
		if got := SlugToTitle(in); got != expected {
			t.Errorf("SlugToTitle(%q) = %q, expected %q", in, got, expected)
		}
	}
}
