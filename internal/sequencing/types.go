package sequencing

import (
	"github.com/shopspring/decimal"
)

// Source is a balance a withdrawal can be drawn from.
type Source string

const (
	Savings Source = "savings"
	Pension Source = "pension"
)

// Other returns the opposite source.
func (s Source) Other() Source {
	if s == Pension {
		return Savings
	}
	return Pension
}

// Balances holds one amount per source. It is used both for account balances
// and for the month's withdrawal totals.
type Balances struct {
	Savings decimal.Decimal
	Pension decimal.Decimal
}

// Get returns the amount held for src.
func (b Balances) Get(src Source) decimal.Decimal {
	if src == Pension {
		return b.Pension
	}
	return b.Savings
}

// With returns a copy of b with src set to v.
func (b Balances) With(src Source, v decimal.Decimal) Balances {
	if src == Pension {
		b.Pension = v
	} else {
		b.Savings = v
	}
	return b
}

// Total sums both sources.
func (b Balances) Total() decimal.Decimal {
	return b.Savings.Add(b.Pension)
}

// WithdrawalAllocation records how much of the month's need one source covered.
type WithdrawalAllocation struct {
	Source Source
	Gross  decimal.Decimal
}

// WithdrawalPlan is the outcome of sequencing one month's need.
// Requested: need handed to the strategy
// Allocations: amounts attributed to need, per source, after any rerouting
// Rerouted: shortfall moved to the other source because the first was depleted
// Balances: balances after the plan is applied
// Withdrawals: total withdrawn per source this month (lump sums included)
// MoneyRanOut: neither source could cover the month
type WithdrawalPlan struct {
	Requested    decimal.Decimal
	Allocations  []WithdrawalAllocation
	Rerouted     decimal.Decimal
	Balances     Balances
	Withdrawals  Balances
	MoneyRanOut  bool
	StrategyUsed string
}

// StrategyContext provides inputs required by sequencing strategies
// NeedAmount: budget shortfall left after state pension, other income and pension lump sums
// Preferred: source that receives the need this month
// Balances: balances after this month's lump sums were taken
// LumpSums: lump sums already withdrawn this month, per source
type StrategyContext struct {
	NeedAmount decimal.Decimal
	Preferred  Source
	Balances   Balances
	LumpSums   Balances
}

// SequencingStrategy decides which balances fund a month's need.
type SequencingStrategy interface {
	Name() string
	Plan(ctx StrategyContext) WithdrawalPlan
}
