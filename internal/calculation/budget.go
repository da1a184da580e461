package calculation

import (
	"fmt"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/pjaos/retirement-finances-sub000/internal/sequencing"
	"github.com/shopspring/decimal"
)

// pensionTransferAge is the age before which a pension left on death passes into savings.
const pensionTransferAge = 75

// BudgetStrategy meets a monthly budget from state pension, other income and a single
// withdrawal source per month.
type BudgetStrategy struct {
	Sequencer sequencing.SequencingStrategy
	Logger    Logger
}

// NewBudgetStrategy creates a budget-driven strategy using the waterfall sequencer.
func NewBudgetStrategy(logger Logger) *BudgetStrategy {
	return &BudgetStrategy{Sequencer: sequencing.NewWaterfallStrategy(), Logger: loggerOrNop(logger)}
}

func (s *BudgetStrategy) Name() domain.Mode { return domain.ModeBudget }

// budgetState is the simulation state carried from one month to the next.
type budgetState struct {
	Date            time.Time
	YearIndex       int
	Pension         decimal.Decimal
	Savings         decimal.Decimal
	TargetIncome    decimal.Decimal
	InterestAccrued decimal.Decimal
	MoneyRanOut     bool
	PensionClosed   bool
}

// budgetMonth holds the inputs of one step that do not depend on state.
type budgetMonth struct {
	Date         time.Time
	StatePension decimal.Decimal
	SavingsLump  decimal.Decimal
	PensionLump  decimal.Decimal
}

// budgetStepper applies one month of the budget rules for a fixed scenario.
type budgetStepper struct {
	params    domain.ScenarioParameters
	sequencer sequencing.SequencingStrategy
	logger    Logger
}

// Project runs the budget-driven simulation.
func (s *BudgetStrategy) Project(in Inputs) (*domain.Projection, error) {
	p := in.Params
	if err := ValidateParameters(p); err != nil {
		return nil, err
	}
	if !p.MonthlyBudget.IsPositive() {
		return nil, &domain.ValidationError{Field: "monthly_budget", Message: "monthly budget must be greater than zero"}
	}

	dates := Horizon(p)
	statePension, err := NewStatePensionCalculator(p.Rates.StatePensionUprate, BoundaryFirstValue).
		HouseholdSeries(p.Household, in.Holdings.StatePensions, dates)
	if err != nil {
		return nil, err
	}

	start := dates[0]
	warnBeforeHistory(s.Logger, "savings account", in.Holdings.Savings, start, BoundaryFirstValue)
	warnBeforeHistory(s.Logger, "pension", in.Holdings.Pensions, start, BoundaryFirstValue)
	savings, err := SumInitialValues(in.Holdings.Savings, start, BoundaryFirstValue)
	if err != nil {
		return nil, fmt.Errorf("savings at report start: %w", err)
	}
	pension, err := SumInitialValues(in.Holdings.Pensions, start, BoundaryFirstValue)
	if err != nil {
		return nil, fmt.Errorf("pension at report start: %w", err)
	}
	s.Logger.Debugf("budget projection %q: %d months from %s, savings %s, pension %s",
		p.Name, len(dates), domain.FormatDate(start), savings.StringFixed(2), pension.StringFixed(2))

	stepper := budgetStepper{params: p, sequencer: s.Sequencer, logger: s.Logger}
	state := budgetState{
		Date:            start,
		Pension:         pension,
		Savings:         savings,
		TargetIncome:    p.MonthlyBudget,
		InterestAccrued: decimal.Zero,
	}

	projection := &domain.Projection{Scenario: p.Name, Mode: domain.ModeBudget}
	projection.Rows = make([]domain.MonthlyRow, 0, len(dates))
	projection.Rows = append(projection.Rows, domain.MonthlyRow{
		Date:              start,
		Total:             pension.Add(savings),
		Pension:           pension,
		Savings:           savings,
		TargetIncome:      p.MonthlyBudget,
		StatePension:      statePension[0],
		SavingsInterest:   decimal.Zero,
		SavingsWithdrawal: decimal.Zero,
		PensionWithdrawal: decimal.Zero,
		Spending:          decimal.Zero,
	})

	for i := 1; i < len(dates); i++ {
		month := budgetMonth{
			Date:         dates[i],
			StatePension: statePension[i],
			SavingsLump:  domain.SumInMonth(in.Schedules.SavingsWithdrawals, dates[i]),
			PensionLump:  domain.SumInMonth(in.Schedules.PensionWithdrawals, dates[i]),
		}
		var row domain.MonthlyRow
		state, row, err = stepper.step(state, month)
		if err != nil {
			return nil, fmt.Errorf("month %s: %w", domain.FormatDate(dates[i]), err)
		}
		if row.MoneyRanOut && !projection.MoneyRanOut {
			projection.MoneyRanOut = true
			d := row.Date
			projection.MoneyRanOutDate = &d
			s.Logger.Infof("budget projection %q: money ran out in %s", p.Name, d.Format("Jan 2006"))
		}
		projection.Rows = append(projection.Rows, row)
	}

	projection.Charts = budgetCharts(projection.Rows)
	return projection, nil
}

// step advances the simulation by one month and returns the row for that month.
func (b budgetStepper) step(st budgetState, in budgetMonth) (budgetState, domain.MonthlyRow, error) {
	next := st
	next.Date = in.Date
	row := domain.MonthlyRow{Date: in.Date, StatePension: in.StatePension, SavingsInterest: decimal.Zero}

	// Savings interest is credited once a year and the budget rises with it.
	if in.Date.Year() != st.Date.Year() {
		next.YearIndex++
		row.SavingsInterest = st.InterestAccrued
		next.Savings = next.Savings.Add(st.InterestAccrued)
		next.InterestAccrued = decimal.Zero
		if len(b.params.Rates.BudgetIncrease) > 0 {
			income, err := ApplyRate(st.TargetIncome, b.params.Rates.BudgetIncrease, st.YearIndex)
			if err != nil {
				return st, row, fmt.Errorf("budget increase: %w", err)
			}
			next.TargetIncome = income.Round(moneyPlaces)
		}
	}

	need := next.TargetIncome.Sub(b.params.OtherIncome).Sub(in.StatePension)

	// A pension lump sum counts towards the budget; a savings lump sum is spent on top of it.
	balances := sequencing.Balances{
		Savings: next.Savings.Sub(in.SavingsLump),
		Pension: next.Pension.Sub(in.PensionLump),
	}
	need = need.Sub(in.PensionLump)

	preferred := sequencing.Savings
	if b.drawFromPension(next, in.Date) {
		preferred = sequencing.Pension
	}
	plan := b.sequencer.Plan(sequencing.StrategyContext{
		NeedAmount: need,
		Preferred:  preferred,
		Balances:   balances,
		LumpSums:   sequencing.Balances{Savings: in.SavingsLump, Pension: in.PensionLump},
	})
	if plan.Rerouted.IsPositive() {
		b.logger.Debugf("%s: %s of the %s need moved to %s (%s)", domain.FormatDate(in.Date),
			plan.Rerouted.StringFixed(2), plan.Requested.StringFixed(2), preferred.Other(), plan.StrategyUsed)
	}
	next.Savings = plan.Balances.Savings
	next.Pension = plan.Balances.Pension
	withdrawals := plan.Withdrawals

	pensionRate, err := ResolveRate(b.params.Rates.PensionGrowth, next.YearIndex)
	if err != nil {
		return st, row, fmt.Errorf("pension growth: %w", err)
	}
	savingsRate, err := ResolveRate(b.params.Rates.SavingsInterest, next.YearIndex)
	if err != nil {
		return st, row, fmt.Errorf("savings interest: %w", err)
	}
	days := DaysBetween(st.Date, in.Date)
	next.Pension = next.Pension.Add(MonthlyGrowth(next.Pension, pensionRate, days))
	next.InterestAccrued = next.InterestAccrued.Add(MonthlyGrowth(next.Savings, savingsRate, days))

	income := next.TargetIncome
	spending := income.Add(in.SavingsLump)
	if plan.MoneyRanOut {
		next.MoneyRanOut = true
		income = in.StatePension
		spending = income
	}

	primary := b.params.Household.Primary
	if !next.PensionClosed && in.Date.After(primary.DeathDate()) && primary.Age(in.Date) < pensionTransferAge {
		b.logger.Infof("pension of %s moved to savings on %s", primary.Name, domain.FormatDate(in.Date))
		next.Savings = next.Savings.Add(next.Pension)
		next.Pension = decimal.Zero
		next.PensionClosed = true
	}

	total := next.Pension.Add(next.Savings)
	if !total.IsPositive() {
		income = in.StatePension
		spending = income
		withdrawals = sequencing.Balances{Savings: decimal.Zero, Pension: decimal.Zero}
	}

	row.Total = total
	row.Pension = next.Pension
	row.Savings = next.Savings
	row.TargetIncome = income
	row.SavingsWithdrawal = withdrawals.Savings
	row.PensionWithdrawal = withdrawals.Pension
	row.Spending = spending
	row.MoneyRanOut = next.MoneyRanOut
	return next, row, nil
}

// drawFromPension reports whether this month's need goes to the pension.
func (b budgetStepper) drawFromPension(st budgetState, at time.Time) bool {
	if st.PensionClosed || b.params.DrawdownStart == nil {
		return false
	}
	return !at.Before(*b.params.DrawdownStart)
}
