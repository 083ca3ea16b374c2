package mathutil

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round up", -1.235, -1.24},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Very small negative", -0.001, 0.00},
		{"Exactly one cent", 0.01, 0.01},
		{"Nearly two cents", 0.019, 0.02},
		{"Large negative", -12345.678, -12345.68},
		{"Binary midpoint", 1.005, 1.01},
		{"Monthly tax share", 1000.0 / 12, 83.33},
		{"Insurance share at half cent", 1500.06 / 12, 125.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if result != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundNonFinite(t *testing.T) {
	if !math.IsNaN(Round(math.NaN())) {
		t.Errorf("Round(NaN) should stay NaN")
	}
	if !math.IsInf(Round(math.Inf(1)), 1) {
		t.Errorf("Round(+Inf) should stay +Inf")
	}
}

func TestRoundDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2166.666666666667", "2166.67"},
		{"2528.2719", "2528.27"},
		{"0.005", "0.01"},
		{"-0.005", "-0.01"},
		{"100", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := RoundDecimal(decimal.RequireFromString(tt.input))
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("RoundDecimal(%s) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCents(t *testing.T) {
	got := Cents(0.1 + 0.2)
	if got.String() != "0.3" {
		t.Errorf("Cents(0.1+0.2) = %s, expected 0.3", got)
	}
}

func TestCentsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Cents(v); !got.IsZero() {
			t.Errorf("Cents(%v) = %s, expected 0", v, got)
		}
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exactly equal", 1.0, 1.0, 0.1, true},
		{"Within tolerance", 1.0, 1.05, 0.1, true},
		{"Outside tolerance", 1.0, 1.15, 0.1, false},
		{"Negative values within tolerance", -1.0, -1.05, 0.1, true},
		{"Negative values outside tolerance", -1.0, -1.15, 0.1, false},
		{"Zero tolerance exact match", 1.0, 1.0, 0.0, true},
		{"Zero tolerance no match", 1.0, 1.001, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		n        float64
		lo       float64
		hi       float64
		expected float64
	}{
		{"Inside range", 5, 0, 10, 5},
		{"Below range", -1, 0, 10, 0},
		{"Above range", 11, 0, 10, 10},
		{"At lower bound", 0, 0, 10, 0},
		{"At upper bound", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Clamp(tt.n, tt.lo, tt.hi)
			if result != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.n, tt.lo, tt.hi, result, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Errorf("IsFinite(1.5) should be true")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Errorf("IsFinite should reject NaN and Inf")
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"50% of 100", 100.0, 50.0, 50.0},
		{"20% down", 500000.0, 20.0, 100000.0},
		{"0% of value", 100.0, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(tt.value, tt.percentage)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v",
					tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}

func TestRoundingEdgeCases(t *testing.T) {
	// Test very large numbers
	result := Round(999999999.999)
	if result != 1000000000.00 {
		t.Errorf("Round of large number failed: got %v, expected %v", result, 1000000000.00)
	}

	// Test very small numbers
	result = Round(0.0001)
	if result != 0 {
		t.Errorf("Round of small number failed: got %v, expected 0", result)
	}
}
