package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/mortgage-calculator/internal/estimate"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/jung-kurt/gofpdf"
)

// PDFFormat renders one estimate, summary and full schedule, as a PDF.
func PDFFormat(w io.Writer, result estimate.Estimate) error {
	in, r := result.Inputs, result.Results

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Amortization schedule - "+result.Name, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Mortgage Breakdown - "+result.Name)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	summary := []string{
		"Home price: " + format.Currency(in.HomePrice),
		"Down payment: " + format.Currency(in.DownPaymentValue),
		"Loan amount: " + format.Currency(r.Principal),
		fmt.Sprintf("Term: %d years at %s", in.LoanTermYears, format.Percent(in.AnnualInterestRatePercent)),
		"Principal & interest: " + format.Currency(r.MonthlyPrincipalAndInterest),
		"Monthly payment: " + format.Currency(r.TotalMonthlyPayment),
		"Total interest: " + format.Currency(r.TotalInterest),
		"Total cost: " + format.Currency(r.TotalCost),
		"Paid off in: " + r.PayoffLabel,
	}
	for _, line := range summary {
		pdf.Cell(60, 8, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	header := func() {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(20, 8, "Month", "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, "Principal", "B", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, "Interest", "B", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, "Balance", "B", 0, "R", false, 0, "")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, period := range r.Schedule {
		if pdf.GetY()+6 > pageHeight-bottom-15 {
			pdf.AddPage()
			header()
		}
		pdf.CellFormat(20, 6, strconv.Itoa(period.Index), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, format.Currency(period.Principal), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, format.Currency(period.Interest), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, format.Currency(period.EndingBalance), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
