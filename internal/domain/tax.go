package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TaxPeriod is the pay period a gross amount refers to.
type TaxPeriod string

const (
	PeriodAnnual      TaxPeriod = "annual"
	PeriodMonthly     TaxPeriod = "monthly"
	PeriodFortnightly TaxPeriod = "fortnightly"
	PeriodWeekly      TaxPeriod = "weekly"
)

// PeriodsPerYear is the fixed multiplier that annualises an amount for p.
func (p TaxPeriod) PeriodsPerYear() int64 {
	switch p {
	case PeriodMonthly:
		return 12
	case PeriodFortnightly:
		return 26
	case PeriodWeekly:
		return 52
	default:
		return 1
	}
}

// ParseTaxPeriod accepts the period names case-insensitively; empty means annual.
func ParseTaxPeriod(s string) (TaxPeriod, error) {
	switch p := TaxPeriod(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodAnnual, nil
	case PeriodAnnual, PeriodMonthly, PeriodFortnightly, PeriodWeekly:
		return p, nil
	default:
		return "", &ValidationError{Field: "period", Message: fmt.Sprintf("unknown period %q", s)}
	}
}

// TaxResult holds income tax, National Insurance and net pay for one period and annualised.
type TaxResult struct {
	Period               TaxPeriod       `json:"period"`
	ReceivesStatePension bool            `json:"receivesStatePension"`
	Gross                decimal.Decimal `json:"gross"`
	Tax                  decimal.Decimal `json:"tax"`
	NI                   decimal.Decimal `json:"ni"`
	Net                  decimal.Decimal `json:"net"`
	AnnualGross          decimal.Decimal `json:"annualGross"`
	AnnualTax            decimal.Decimal `json:"annualTax"`
	AnnualNI             decimal.Decimal `json:"annualNi"`
	AnnualNet            decimal.Decimal `json:"annualNet"`
}

// TaxYearSummary is the tax due for one owner in one UK tax year.
type TaxYearSummary struct {
	TaxYear              string          `json:"taxYear"`
	Owner                Owner           `json:"owner"`
	Taxable              decimal.Decimal `json:"taxable"`
	ReceivesStatePension bool            `json:"receivesStatePension"`
	Tax                  decimal.Decimal `json:"tax"`
	NI                   decimal.Decimal `json:"ni"`
	MonthlyTax           decimal.Decimal `json:"monthlyTax"`
}
