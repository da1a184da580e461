package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mode selects which simulation strategy evaluates a scenario.
type Mode string

const (
	ModeBudget   Mode = "budget"
	ModeSchedule Mode = "schedule"
)

// WithdrawalRow is a single planned withdrawal or income event.
type WithdrawalRow struct {
	Date    time.Time       `json:"date"`
	Amount  decimal.Decimal `json:"amount"`
	Note    string          `json:"note,omitempty"`
	Taxable bool            `json:"taxable"`
	Owner   Owner           `json:"owner,omitempty"`
}

// Rates groups the yearly rate schedules a scenario needs.
type Rates struct {
	SavingsInterest    RateSchedule `json:"savingsInterest"`
	PensionGrowth      RateSchedule `json:"pensionGrowth"`
	StatePensionUprate RateSchedule `json:"statePensionUprate"`
	// BudgetIncrease is optional; when empty the target income stays flat.
	BudgetIncrease RateSchedule `json:"budgetIncrease,omitempty"`
}

// ScenarioParameters is the immutable set of scenario settings passed by value into a simulation.
type ScenarioParameters struct {
	Name          string          `json:"name"`
	Mode          Mode            `json:"mode"`
	Household     Household       `json:"household"`
	ReportStart   time.Time       `json:"reportStart"`
	DrawdownStart *time.Time      `json:"drawdownStart,omitempty"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	OtherIncome   decimal.Decimal `json:"otherIncome"`
	Rates         Rates           `json:"rates"`
}

// Holdings are the balance histories the simulation starts from.
type Holdings struct {
	Savings       []Series       `json:"savings"`
	Pensions      []Series       `json:"pensions"`
	StatePensions []StatePension `json:"statePensions"`
}

// Schedules are the explicit withdrawal and income rows of a scenario.
// Budget mode treats the withdrawal rows as lump sums; schedule mode requires all three.
type Schedules struct {
	SavingsWithdrawals []WithdrawalRow `json:"savingsWithdrawals"`
	PensionWithdrawals []WithdrawalRow `json:"pensionWithdrawals"`
	OtherIncome        []WithdrawalRow `json:"otherIncome"`
}

// SumInMonth totals the amounts of rows dated in the same calendar month as at.
func SumInMonth(rows []WithdrawalRow, at time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		if SameMonth(r.Date, at) {
			total = total.Add(r.Amount)
		}
	}
	return total
}

