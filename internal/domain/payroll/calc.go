package payroll

import "github.com/shopspring/decimal"

type Line struct {
	Label  string
	Amount decimal.Decimal
}

// Breakdown is the payslip arithmetic done in exact decimal.
type Breakdown struct {
	Earnings   []Line
	Deductions []Line
	Gross      decimal.Decimal
	Total      decimal.Decimal
	Net        decimal.Decimal
}

func ComputeBreakdown(e Entry) Breakdown {
	base := decimal.NewFromFloat(e.BaseSalary).Round(2)
	bonus := decimal.NewFromFloat(e.Bonus).Round(2)
	deductions := decimal.NewFromFloat(e.Deductions).Round(2)

	b := Breakdown{
		Earnings: []Line{
			{Label: "Base salary", Amount: base},
			{Label: "Bonus", Amount: bonus},
		},
		Deductions: []Line{
			{Label: "Deductions", Amount: deductions},
		},
	}
	b.Gross = base.Add(bonus)
	b.Total = deductions
	b.Net = b.Gross.Sub(b.Total)
	return b
}
