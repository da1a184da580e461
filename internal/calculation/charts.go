package calculation

import (
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// Chart names produced by the two projection modes.
const (
	ChartBalances        = "balances"
	ChartIncome          = "income"
	ChartSavingsInterest = "savings interest"
	ChartIncomeSources   = "income sources"
	ChartSavingsGrowth   = "savings growth"
	ChartWithdrawals     = "withdrawals"
)

func newChart(name string, columns ...string) domain.ChartTable {
	return domain.ChartTable{Name: name, Columns: columns}
}

func budgetCharts(rows []domain.MonthlyRow) []domain.ChartTable {
	balances := newChart(ChartBalances, "Total", "Pension", "Savings")
	income := newChart(ChartIncome, "Monthly budget", "State pension")
	interest := newChart(ChartSavingsInterest, "Savings interest")
	withdrawals := newChart(ChartWithdrawals, "Savings withdrawal", "Pension withdrawal")
	for _, r := range rows {
		balances.Points = append(balances.Points, point(r.Date, r.Total, r.Pension, r.Savings))
		income.Points = append(income.Points, point(r.Date, r.TargetIncome, r.StatePension))
		interest.Points = append(interest.Points, point(r.Date, r.SavingsInterest))
		withdrawals.Points = append(withdrawals.Points, point(r.Date, r.SavingsWithdrawal, r.PensionWithdrawal))
	}
	return []domain.ChartTable{balances, income, interest, withdrawals}
}

func scheduleCharts(rows []domain.ScheduleRow) []domain.ChartTable {
	balances := newChart(ChartBalances, "Total", "Pension", "Savings")
	sources := newChart(ChartIncomeSources, "State pension", "Pension withdrawal", "Savings withdrawal", "Other income", "Tax", "Net income")
	growth := newChart(ChartSavingsGrowth, "Savings interest", "Pension growth")
	withdrawals := newChart(ChartWithdrawals, "Savings withdrawal", "Pension withdrawal")
	for _, r := range rows {
		balances.Points = append(balances.Points, point(r.Date, r.Total, r.Pension, r.Savings))
		sources.Points = append(sources.Points, point(r.Date, r.StatePension, r.PensionWithdrawal, r.SavingsWithdrawal, r.OtherIncome, r.Tax, r.NetIncome))
		growth.Points = append(growth.Points, point(r.Date, r.SavingsInterest, r.PensionGrowth))
		withdrawals.Points = append(withdrawals.Points, point(r.Date, r.SavingsWithdrawal, r.PensionWithdrawal))
	}
	return []domain.ChartTable{balances, sources, growth, withdrawals}
}

func point(date time.Time, values ...decimal.Decimal) domain.ChartPoint {
	return domain.ChartPoint{Date: date, Values: values}
}
