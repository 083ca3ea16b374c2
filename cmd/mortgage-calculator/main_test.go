package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-calculator/internal/estimate"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
)

func TestOutputDestination(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		flagFile   string
		configFile string
		expected   string
	}{
		{"Flag wins for csv", constants.OutputFormatCSV, "out.csv", "amortization.pdf", "out.csv"},
		{"Flag wins for pdf", constants.OutputFormatPDF, "mine.pdf", "amortization.pdf", "mine.pdf"},
		{"Config file only applies to pdf", constants.OutputFormatPDF, "", "schedule.pdf", "schedule.pdf"},
		{"Csv ignores config file", constants.OutputFormatCSV, "", "amortization.pdf", ""},
		{"Pretty ignores config file", constants.OutputFormatPretty, "", "amortization.pdf", ""},
		{"Nothing configured", constants.OutputFormatPDF, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputDestination(tt.format, tt.flagFile, tt.configFile); got != tt.expected {
				t.Errorf("outputDestination() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func sampleResults() []estimate.Estimate {
	inputs := mortgage.Inputs{
		HomePrice:                 500000,
		DownPaymentValue:          100000,
		LoanTermYears:             30,
		AnnualInterestRatePercent: 6.5,
	}
	return []estimate.Estimate{{Name: "Base", Inputs: inputs, Results: mortgage.Compute(inputs)}}
}

func TestRenderWritesFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "schedule.csv")
	if err := render(constants.OutputFormatCSV, csvPath, sampleResults()); err != nil {
		t.Fatalf("render(csv) error = %v", err)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("failed to read csv: %v", err)
	}
	if !strings.HasPrefix(string(data), `"scenario","month"`) {
		t.Errorf("unexpected csv contents: %.40s", data)
	}

	pdfFile := filepath.Join(dir, "schedule.pdf")
	if err := render(constants.OutputFormatPDF, pdfFile, sampleResults()); err != nil {
		t.Fatalf("render(pdf) error = %v", err)
	}
	data, err = os.ReadFile(pdfFile)
	if err != nil {
		t.Fatalf("failed to read pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("pdf output should start with the %%PDF marker")
	}
}

func TestRenderPDFWithoutScenarios(t *testing.T) {
	if err := render(constants.OutputFormatPDF, filepath.Join(t.TempDir(), "x.pdf"), nil); err == nil {
		t.Fatal("expected an error but got nil")
	}
}

func TestWriteFileReportsCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	if err := writeFile(path, []byte("x")); err == nil {
		t.Fatal("expected an error but got nil")
	}
}
