package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// RenderPayslip lays out one entry as a single-page A4 PDF.
func RenderPayslip(e Entry, issued time.Time) ([]byte, error) {
	b := ComputeBreakdown(e)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %d", e.ID), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", e.FullName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee ID: %d", e.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Issued: %s", issued.Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string, lines []Line) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 12)
		for _, line := range lines {
			pdf.CellFormat(120, 8, line.Label, "", 0, "L", false, 0, "")
			pdf.CellFormat(50, 8, money(line.Amount), "", 1, "R", false, 0, "")
		}
	}
	section("Earnings", b.Earnings)
	section("Deductions", b.Deductions)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	for _, total := range []Line{
		{Label: "Gross", Amount: b.Gross},
		{Label: "Total deductions", Amount: b.Total},
		{Label: "Net pay", Amount: b.Net},
	} {
		pdf.CellFormat(120, 8, total.Label, "T", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, money(total.Amount), "T", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
