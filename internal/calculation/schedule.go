package calculation

import (
	"fmt"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// ScheduleStrategy follows explicit withdrawal and income rows and deducts UK income tax
// apportioned by tax year.
type ScheduleStrategy struct {
	Apportioner *TaxYearApportioner
	Logger      Logger
}

// NewScheduleStrategy creates a schedule-driven strategy.
func NewScheduleStrategy(taxCalc *UKTaxCalculator, logger Logger) *ScheduleStrategy {
	if taxCalc == nil {
		taxCalc = NewUKTaxCalculator2024()
	}
	return &ScheduleStrategy{Apportioner: NewTaxYearApportioner(taxCalc), Logger: loggerOrNop(logger)}
}

func (s *ScheduleStrategy) Name() domain.Mode { return domain.ModeSchedule }

// scheduleState is the simulation state carried from one month to the next.
type scheduleState struct {
	Date            time.Time
	YearIndex       int
	Pension         decimal.Decimal
	Savings         decimal.Decimal
	InterestAccrued decimal.Decimal
}

// scheduleMonth holds the scheduled flows of one month.
type scheduleMonth struct {
	Date              time.Time
	PensionWithdrawal decimal.Decimal
	SavingsWithdrawal decimal.Decimal
	OtherIncome       decimal.Decimal
	StatePension      decimal.Decimal
}

// Project runs the schedule-driven simulation.
func (s *ScheduleStrategy) Project(in Inputs) (*domain.Projection, error) {
	p := in.Params
	if err := ValidateParameters(p); err != nil {
		return nil, err
	}
	switch {
	case len(in.Schedules.PensionWithdrawals) == 0:
		return nil, &domain.InsufficientScheduleError{Schedule: "pension withdrawal"}
	case len(in.Schedules.SavingsWithdrawals) == 0:
		return nil, &domain.InsufficientScheduleError{Schedule: "savings withdrawal"}
	case len(in.Schedules.OtherIncome) == 0:
		return nil, &domain.InsufficientScheduleError{Schedule: "other income"}
	}

	dates := Horizon(p)
	start := dates[0]
	warnBeforeHistory(s.Logger, "savings account", in.Holdings.Savings, start, BoundaryZero)
	warnBeforeHistory(s.Logger, "pension", in.Holdings.Pensions, start, BoundaryZero)
	savings, err := SumInitialValues(in.Holdings.Savings, start, BoundaryZero)
	if err != nil {
		return nil, fmt.Errorf("savings at report start: %w", err)
	}
	pension, err := SumInitialValues(in.Holdings.Pensions, start, BoundaryZero)
	if err != nil {
		return nil, fmt.Errorf("pension at report start: %w", err)
	}

	spCalc := NewStatePensionCalculator(p.Rates.StatePensionUprate, BoundaryZero)
	owners := []domain.Owner{domain.OwnerPrimary}
	hasPartner := p.Household.Partner != nil && p.Household.Partner.Configured()
	if hasPartner {
		owners = append(owners, domain.OwnerPartner)
	}
	if err := checkRowOwners(in.Schedules, hasPartner); err != nil {
		return nil, err
	}
	ownerPension := map[domain.Owner][]decimal.Decimal{}
	for _, owner := range owners {
		series, err := spCalc.OwnerSeries(p.Household, in.Holdings.StatePensions, owner, dates)
		if err != nil {
			return nil, err
		}
		ownerPension[owner] = series
	}
	s.warnOutsideHorizon(in.Schedules, start, dates[len(dates)-1])
	s.Logger.Debugf("schedule projection %q: %d months from %s, savings %s, pension %s",
		p.Name, len(dates), domain.FormatDate(start), savings.StringFixed(2), pension.StringFixed(2))

	state := scheduleState{Date: start, Pension: pension, Savings: savings, InterestAccrued: decimal.Zero}
	rows := make([]domain.ScheduleRow, 0, len(dates))
	var taxable []TaxableMonth
	for i, d := range dates {
		month := scheduleMonth{Date: d, StatePension: decimal.Zero}
		for _, owner := range owners {
			month.StatePension = month.StatePension.Add(ownerPension[owner][i])
		}
		var row domain.ScheduleRow
		if i == 0 {
			row = domain.ScheduleRow{
				Date:              d,
				Total:             pension.Add(savings),
				Pension:           pension,
				Savings:           savings,
				StatePension:      month.StatePension,
				PensionWithdrawal: decimal.Zero,
				SavingsWithdrawal: decimal.Zero,
				OtherIncome:       decimal.Zero,
				SavingsInterest:   decimal.Zero,
				PensionGrowth:     decimal.Zero,
			}
		} else {
			month.PensionWithdrawal = domain.SumInMonth(in.Schedules.PensionWithdrawals, d)
			month.SavingsWithdrawal = domain.SumInMonth(in.Schedules.SavingsWithdrawals, d)
			month.OtherIncome = domain.SumInMonth(in.Schedules.OtherIncome, d)
			state, row, err = s.step(p, state, month)
			if err != nil {
				return nil, fmt.Errorf("month %s: %w", domain.FormatDate(d), err)
			}
		}
		row.TaxYear = TaxYearOf(d)

		row.Taxable = decimal.Zero
		for _, owner := range owners {
			amount := ownerPension[owner][i]
			if i > 0 {
				amount = amount.Add(taxableInMonth(in.Schedules, owner, d))
			}
			row.Taxable = row.Taxable.Add(amount)
			taxable = append(taxable, TaxableMonth{
				Date:                 d,
				Owner:                owner,
				Amount:               amount,
				ReceivesStatePension: ownerPension[owner][i].IsPositive(),
			})
		}
		rows = append(rows, row)
	}

	summaries := s.Apportioner.Apportion(taxable)
	deductions := MonthlyDeductions(summaries)
	for i := range rows {
		rows[i].Tax = deductions[rows[i].TaxYear]
		rows[i].NetIncome = rows[i].StatePension.
			Add(rows[i].PensionWithdrawal).
			Add(rows[i].SavingsWithdrawal).
			Add(rows[i].OtherIncome).
			Sub(rows[i].Tax)
	}

	return &domain.Projection{
		Scenario:     p.Name,
		Mode:         domain.ModeSchedule,
		ScheduleRows: rows,
		Charts:       scheduleCharts(rows),
		TaxYears:     summaries,
	}, nil
}

// step applies one month of scheduled flows and growth.
func (s *ScheduleStrategy) step(p domain.ScenarioParameters, st scheduleState, in scheduleMonth) (scheduleState, domain.ScheduleRow, error) {
	next := st
	next.Date = in.Date
	row := domain.ScheduleRow{
		Date:              in.Date,
		StatePension:      in.StatePension,
		PensionWithdrawal: in.PensionWithdrawal,
		SavingsWithdrawal: in.SavingsWithdrawal,
		OtherIncome:       in.OtherIncome,
		SavingsInterest:   decimal.Zero,
	}

	if in.Date.Year() != st.Date.Year() {
		next.YearIndex++
		row.SavingsInterest = st.InterestAccrued
		next.Savings = next.Savings.Add(st.InterestAccrued)
		next.InterestAccrued = decimal.Zero
	}

	next.Pension = next.Pension.Sub(in.PensionWithdrawal)
	next.Savings = next.Savings.Sub(in.SavingsWithdrawal)

	pensionRate, err := ResolveRate(p.Rates.PensionGrowth, next.YearIndex)
	if err != nil {
		return st, row, fmt.Errorf("pension growth: %w", err)
	}
	savingsRate, err := ResolveRate(p.Rates.SavingsInterest, next.YearIndex)
	if err != nil {
		return st, row, fmt.Errorf("savings interest: %w", err)
	}
	days := DaysBetween(st.Date, in.Date)
	row.PensionGrowth = MonthlyGrowth(next.Pension, pensionRate, days)
	next.Pension = next.Pension.Add(row.PensionGrowth)
	next.InterestAccrued = next.InterestAccrued.Add(MonthlyGrowth(next.Savings, savingsRate, days))

	row.Pension = next.Pension
	row.Savings = next.Savings
	row.Total = next.Pension.Add(next.Savings)
	return next, row, nil
}

// checkRowOwners rejects taxable rows assigned to a partner the household does not have.
// Their tax would have no owner to be apportioned to.
func checkRowOwners(sch domain.Schedules, hasPartner bool) error {
	if hasPartner {
		return nil
	}
	sources := []struct {
		field string
		rows  []domain.WithdrawalRow
	}{
		{"pension_withdrawals", sch.PensionWithdrawals},
		{"savings_withdrawals", sch.SavingsWithdrawals},
		{"other_income_schedule", sch.OtherIncome},
	}
	for _, src := range sources {
		for _, r := range src.rows {
			if r.Taxable && r.Owner == domain.OwnerPartner {
				return &domain.ValidationError{
					Field:   src.field,
					Message: fmt.Sprintf("taxable row on %s is owned by the partner but no partner is configured", domain.FormatDate(r.Date)),
				}
			}
		}
	}
	return nil
}

func taxableInMonth(sch domain.Schedules, owner domain.Owner, at time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, rows := range [][]domain.WithdrawalRow{sch.PensionWithdrawals, sch.SavingsWithdrawals, sch.OtherIncome} {
		for _, r := range rows {
			if r.Taxable && r.Owner.OrPrimary() == owner && domain.SameMonth(r.Date, at) {
				total = total.Add(r.Amount)
			}
		}
	}
	return total
}

// warnOutsideHorizon logs rows that the simulation will never apply.
func (s *ScheduleStrategy) warnOutsideHorizon(sch domain.Schedules, start, end time.Time) {
	for _, rows := range [][]domain.WithdrawalRow{sch.PensionWithdrawals, sch.SavingsWithdrawals, sch.OtherIncome} {
		for _, r := range rows {
			if domain.SameMonth(r.Date, start) || r.Date.Before(start) || !r.Date.Before(end.AddDate(0, 1, 0)) {
				s.Logger.Warnf("scheduled row %s (%s) falls outside the simulated months and is ignored",
					domain.FormatDate(r.Date), r.Amount.StringFixed(2))
			}
		}
	}
}
