package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRow is one month of a budget-driven projection.
type MonthlyRow struct {
	Date              time.Time       `json:"date"`
	Total             decimal.Decimal `json:"total"`
	Pension           decimal.Decimal `json:"pension"`
	Savings           decimal.Decimal `json:"savings"`
	TargetIncome      decimal.Decimal `json:"targetIncome"`
	StatePension      decimal.Decimal `json:"statePension"`
	SavingsInterest   decimal.Decimal `json:"savingsInterest"`
	SavingsWithdrawal decimal.Decimal `json:"savingsWithdrawal"`
	PensionWithdrawal decimal.Decimal `json:"pensionWithdrawal"`
	Spending          decimal.Decimal `json:"spending"`
	MoneyRanOut       bool            `json:"moneyRanOut"`
}

// ScheduleRow is one month of a schedule-driven projection.
type ScheduleRow struct {
	Date              time.Time       `json:"date"`
	Total             decimal.Decimal `json:"total"`
	Pension           decimal.Decimal `json:"pension"`
	Savings           decimal.Decimal `json:"savings"`
	StatePension      decimal.Decimal `json:"statePension"`
	PensionWithdrawal decimal.Decimal `json:"pensionWithdrawal"`
	SavingsWithdrawal decimal.Decimal `json:"savingsWithdrawal"`
	OtherIncome       decimal.Decimal `json:"otherIncome"`
	Taxable           decimal.Decimal `json:"taxable"`
	Tax               decimal.Decimal `json:"tax"`
	NetIncome         decimal.Decimal `json:"netIncome"`
	SavingsInterest   decimal.Decimal `json:"savingsInterest"`
	PensionGrowth     decimal.Decimal `json:"pensionGrowth"`
	TaxYear           string          `json:"taxYear"`
}

// ChartPoint is one x position of a chart table.
type ChartPoint struct {
	Date   time.Time         `json:"date"`
	Values []decimal.Decimal `json:"values"`
}

// ChartTable is a named table ready for plotting: one column per series.
type ChartTable struct {
	Name    string       `json:"name"`
	Columns []string     `json:"columns"`
	Points  []ChartPoint `json:"points"`
}

// Column returns the values of the named column, or nil when it does not exist.
func (c ChartTable) Column(name string) []decimal.Decimal {
	idx := -1
	for i, col := range c.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	values := make([]decimal.Decimal, 0, len(c.Points))
	for _, p := range c.Points {
		values = append(values, p.Values[idx])
	}
	return values
}

// RealityTables are recorded totals merged from the balance histories.
type RealityTables struct {
	Pension Series `json:"pension"`
	Savings Series `json:"savings"`
	Total   Series `json:"total"`
}

// Projection is the result of evaluating one scenario.
type Projection struct {
	Scenario        string           `json:"scenario"`
	Mode            Mode             `json:"mode"`
	Rows            []MonthlyRow     `json:"rows,omitempty"`
	ScheduleRows    []ScheduleRow    `json:"scheduleRows,omitempty"`
	Charts          []ChartTable     `json:"charts"`
	TaxYears        []TaxYearSummary `json:"taxYears,omitempty"`
	MoneyRanOut     bool             `json:"moneyRanOut"`
	MoneyRanOutDate *time.Time       `json:"moneyRanOutDate,omitempty"`
	Reality         *RealityTables   `json:"reality,omitempty"`
}

// Chart returns the chart table with the given name.
func (p *Projection) Chart(name string) (ChartTable, bool) {
	for _, c := range p.Charts {
		if c.Name == name {
			return c, true
		}
	}
	return ChartTable{}, false
}

// Len is the number of monthly rows regardless of mode.
func (p *Projection) Len() int {
	if p.Mode == ModeSchedule {
		return len(p.ScheduleRows)
	}
	return len(p.Rows)
}

// FinalBalances returns the balances in the last row of the horizon.
func (p *Projection) FinalBalances() (total, pension, savings decimal.Decimal) {
	switch {
	case p.Mode == ModeSchedule && len(p.ScheduleRows) > 0:
		r := p.ScheduleRows[len(p.ScheduleRows)-1]
		return r.Total, r.Pension, r.Savings
	case len(p.Rows) > 0:
		r := p.Rows[len(p.Rows)-1]
		return r.Total, r.Pension, r.Savings
	}
	return decimal.Zero, decimal.Zero, decimal.Zero
}
