package calculation

import (
	"fmt"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxYearOf names the UK tax year (6 April to 5 April) containing t, e.g. "2024-2025".
func TaxYearOf(t time.Time) string {
	y := t.Year()
	if t.Before(time.Date(y, time.April, 6, 0, 0, 0, 0, t.Location())) {
		y--
	}
	return fmt.Sprintf("%d-%d", y, y+1)
}

// TaxableMonth is one owner's taxable income for one simulated month.
type TaxableMonth struct {
	Date                 time.Time
	Owner                domain.Owner
	Amount               decimal.Decimal
	ReceivesStatePension bool
}

// TaxYearApportioner groups taxable months into tax years and spreads each year's tax
// flat across its twelve months. PAYE timing is not modelled.
type TaxYearApportioner struct {
	Calc *UKTaxCalculator
}

// NewTaxYearApportioner creates an apportioner backed by calc.
func NewTaxYearApportioner(calc *UKTaxCalculator) *TaxYearApportioner {
	return &TaxYearApportioner{Calc: calc}
}

type taxYearKey struct {
	year  string
	owner domain.Owner
}

// Apportion returns one summary per tax year and owner with taxable income, in the order first seen.
// A year in which the owner received state pension in any month is taxed without NI.
func (a *TaxYearApportioner) Apportion(months []TaxableMonth) []domain.TaxYearSummary {
	var order []taxYearKey
	totals := map[taxYearKey]*domain.TaxYearSummary{}
	for _, m := range months {
		key := taxYearKey{year: TaxYearOf(m.Date), owner: m.Owner.OrPrimary()}
		s, ok := totals[key]
		if !ok {
			s = &domain.TaxYearSummary{TaxYear: key.year, Owner: key.owner, Taxable: decimal.Zero}
			totals[key] = s
			order = append(order, key)
		}
		s.Taxable = s.Taxable.Add(m.Amount)
		s.ReceivesStatePension = s.ReceivesStatePension || m.ReceivesStatePension
	}

	summaries := make([]domain.TaxYearSummary, 0, len(order))
	for _, key := range order {
		s := totals[key]
		if !s.Taxable.IsPositive() {
			continue
		}
		s.Taxable = s.Taxable.Round(a.Calc.ReportingPrecision)
		result := a.Calc.CalcNetPay(s.Taxable, s.ReceivesStatePension, domain.PeriodAnnual)
		s.Tax = result.AnnualTax
		// NI is reported for reference; only income tax is deducted from the projection.
		s.NI = result.AnnualNI
		s.MonthlyTax = result.AnnualTax.Div(monthsPerYear).Round(a.Calc.ReportingPrecision)
		summaries = append(summaries, *s)
	}
	return summaries
}

// MonthlyDeductions totals the flat monthly tax of every owner by tax year name.
func MonthlyDeductions(summaries []domain.TaxYearSummary) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, s := range summaries {
		out[s.TaxYear] = out[s.TaxYear].Add(s.MonthlyTax)
	}
	return out
}
