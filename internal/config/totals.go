package config

import (
	"fmt"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// NamedValue is the latest recorded balance of one account or pension.
type NamedValue struct {
	Name  string          `json:"name"`
	Owner string          `json:"owner,omitempty"`
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// TotalsReport summarises the latest recorded balances.
type TotalsReport struct {
	Accounts []NamedValue     `json:"accounts"`
	Pensions []NamedValue     `json:"pensions"`
	Savings  decimal.Decimal `json:"savings"`
	Pension  decimal.Decimal `json:"pension"`
	Total    decimal.Decimal `json:"total"`
}

// Totals returns the latest balance of every active account and personal pension.
func (f *File) Totals() (TotalsReport, error) {
	report := TotalsReport{Savings: decimal.Zero, Pension: decimal.Zero}
	for i, a := range f.Accounts {
		if !a.IsActive() {
			continue
		}
		nv, err := latest("accounts", i, a)
		if err != nil {
			return report, err
		}
		report.Accounts = append(report.Accounts, nv)
		report.Savings = report.Savings.Add(nv.Value)
	}
	for i, p := range f.Pensions {
		if !p.IsActive() {
			continue
		}
		nv, err := latest("pensions", i, p)
		if err != nil {
			return report, err
		}
		report.Pensions = append(report.Pensions, nv)
		report.Pension = report.Pension.Add(nv.Value)
	}
	report.Total = report.Savings.Add(report.Pension)
	return report, nil
}

func latest(field string, index int, a AccountConfig) (NamedValue, error) {
	series, err := parseHistory(fmt.Sprintf("%s[%d]", field, index), a.History)
	if err != nil {
		return NamedValue{}, err
	}
	nv := NamedValue{Name: a.Name, Owner: a.Owner, Value: decimal.Zero}
	if last, ok := series.Last(); ok {
		nv.Date = domain.FormatDate(last.Date)
		nv.Value = last.Value
	}
	return nv, nil
}
