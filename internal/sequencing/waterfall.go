package sequencing

import "github.com/shopspring/decimal"

// WaterfallStrategy sends the whole need to a single preferred source. When that leaves a
// source overdrawn the shortfall moves to the other source if it can cover it; otherwise the
// month is marked as having run out of money.
type WaterfallStrategy struct{}

func NewWaterfallStrategy() *WaterfallStrategy { return &WaterfallStrategy{} }

func (s *WaterfallStrategy) Name() string { return "waterfall" }

func (s *WaterfallStrategy) Plan(ctx StrategyContext) WithdrawalPlan {
	plan := WithdrawalPlan{
		Requested:    ctx.NeedAmount,
		StrategyUsed: s.Name(),
		Balances:     ctx.Balances,
		Withdrawals:  ctx.LumpSums,
		Rerouted:     decimal.Zero,
	}
	preferred := ctx.Preferred
	if preferred == "" {
		preferred = Savings
	}

	needBySource := Balances{Savings: decimal.Zero, Pension: decimal.Zero}
	if ctx.NeedAmount.IsPositive() {
		plan.Balances = plan.Balances.With(preferred, plan.Balances.Get(preferred).Sub(ctx.NeedAmount))
		plan.Withdrawals = plan.Withdrawals.With(preferred, plan.Withdrawals.Get(preferred).Add(ctx.NeedAmount))
		needBySource = needBySource.With(preferred, ctx.NeedAmount)
	}

	for _, src := range []Source{preferred, preferred.Other()} {
		balance := plan.Balances.Get(src)
		if !balance.IsNegative() || plan.Withdrawals.Get(src).IsZero() {
			continue
		}
		shortfall := balance.Neg()
		other := src.Other()
		if plan.Balances.Get(other).LessThan(shortfall) {
			plan.Balances = plan.Balances.With(src, decimal.Zero)
			plan.Withdrawals = Balances{Savings: decimal.Zero, Pension: decimal.Zero}
			plan.MoneyRanOut = true
			return plan
		}
		plan.Balances = plan.Balances.With(other, plan.Balances.Get(other).Sub(shortfall))
		plan.Balances = plan.Balances.With(src, decimal.Zero)
		plan.Withdrawals = plan.Withdrawals.With(other, plan.Withdrawals.Get(other).Add(shortfall))
		plan.Withdrawals = plan.Withdrawals.With(src, plan.Withdrawals.Get(src).Sub(shortfall))
		moved := decimal.Min(shortfall, needBySource.Get(src))
		needBySource = needBySource.With(src, needBySource.Get(src).Sub(moved))
		needBySource = needBySource.With(other, needBySource.Get(other).Add(moved))
		plan.Rerouted = plan.Rerouted.Add(shortfall)
	}

	for _, src := range []Source{Savings, Pension} {
		if needBySource.Get(src).IsPositive() {
			plan.Allocations = append(plan.Allocations, WithdrawalAllocation{Source: src, Gross: needBySource.Get(src)})
		}
	}
	return plan
}
