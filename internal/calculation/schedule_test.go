package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scheduleInputs covers January 2025 to January 2026 with a taxable monthly pension
// withdrawal from February onwards.
func scheduleInputs() Inputs {
	var pensionRows []domain.WithdrawalRow
	for _, d := range domain.MonthlyDates(date(2025, time.February, 1), date(2026, time.January, 1)) {
		pensionRows = append(pensionRows, domain.WithdrawalRow{Date: d, Amount: dec("3750"), Taxable: true})
	}
	return Inputs{
		Params: domain.ScenarioParameters{
			Name: "schedule",
			Mode: domain.ModeSchedule,
			Household: domain.Household{
				Primary: domain.Person{Name: "Me", BirthDate: date(1960, time.January, 1), MaxAge: 66},
			},
			ReportStart: date(2025, time.January, 1),
			Rates: domain.Rates{
				SavingsInterest:    rates("0"),
				PensionGrowth:      rates("0"),
				StatePensionUprate: rates("0"),
			},
		},
		Holdings: domain.Holdings{
			Savings:  []domain.Series{{{Date: date(2024, time.January, 1), Value: dec("100000")}}},
			Pensions: []domain.Series{{{Date: date(2024, time.January, 1), Value: dec("100000")}}},
		},
		Schedules: domain.Schedules{
			PensionWithdrawals: pensionRows,
			SavingsWithdrawals: []domain.WithdrawalRow{{Date: date(2025, time.March, 1), Amount: dec("1000"), Note: "holiday"}},
			OtherIncome:        []domain.WithdrawalRow{{Date: date(2025, time.February, 1), Amount: dec("100"), Note: "gift"}},
		},
	}
}

func TestScheduleStrategy_FollowsScheduleAndApportionsTax(t *testing.T) {
	projection, err := NewScheduleStrategy(nil, nil).Project(scheduleInputs())
	require.NoError(t, err)
	require.Len(t, projection.ScheduleRows, 13)
	assert.Equal(t, domain.ModeSchedule, projection.Mode)

	rows := projection.ScheduleRows
	assertDecimal(t, "200000", rows[0].Total)
	assert.True(t, rows[0].PensionWithdrawal.IsZero())

	feb := rows[1]
	assertDecimal(t, "3750", feb.PensionWithdrawal)
	assertDecimal(t, "100", feb.OtherIncome)
	assert.Equal(t, "2024-2025", feb.TaxYear)
	assert.True(t, feb.Tax.IsZero(), "11,250 in 2024-25 is under the personal allowance")
	assertDecimal(t, "3850", feb.NetIncome)

	march := rows[2]
	assertDecimal(t, "1000", march.SavingsWithdrawal)
	assertDecimal(t, "3750", march.Taxable)

	may := rows[4]
	assert.Equal(t, "2025-2026", may.TaxYear)
	assertDecimal(t, "353.00", may.Tax)
	assertDecimal(t, "3397.00", may.NetIncome)

	last := rows[12]
	assertDecimal(t, "55000", last.Pension)
	assertDecimal(t, "99000", last.Savings)

	require.Len(t, projection.TaxYears, 2)
	assertDecimal(t, "11250", projection.TaxYears[0].Taxable)
	assertDecimal(t, "33750", projection.TaxYears[1].Taxable)
	assertDecimal(t, "4236.00", projection.TaxYears[1].Tax)
}

func TestScheduleStrategy_ChartTables(t *testing.T) {
	projection, err := NewScheduleStrategy(nil, nil).Project(scheduleInputs())
	require.NoError(t, err)

	for _, name := range []string{ChartBalances, ChartIncomeSources, ChartSavingsGrowth, ChartWithdrawals} {
		chart, ok := projection.Chart(name)
		require.True(t, ok, name)
		assert.Len(t, chart.Points, 13)
	}
	sources, _ := projection.Chart(ChartIncomeSources)
	tax := sources.Column("Tax")
	require.Len(t, tax, 13)
	assertDecimal(t, "353.00", tax[4])
	assert.Nil(t, sources.Column("missing"))
}

func TestScheduleStrategy_SavingsInterestCreditedInJanuary(t *testing.T) {
	in := scheduleInputs()
	in.Params.Rates.SavingsInterest = rates("3")
	projection, err := NewScheduleStrategy(nil, nil).Project(in)
	require.NoError(t, err)

	rows := projection.ScheduleRows
	for _, row := range rows[:12] {
		assert.True(t, row.SavingsInterest.IsZero())
	}
	assert.True(t, rows[12].SavingsInterest.IsPositive())
	assert.True(t, rows[12].Savings.Equal(rows[11].Savings.Add(rows[12].SavingsInterest)))
}

func TestScheduleStrategy_StatePensionIsTaxableAndWaivesNI(t *testing.T) {
	in := scheduleInputs()
	in.Holdings.StatePensions = []domain.StatePension{{
		Owner:     domain.OwnerPrimary,
		StartDate: date(2024, time.January, 1),
		History:   domain.Series{{Date: date(2024, time.January, 1), Value: dec("12000")}},
	}}
	projection, err := NewScheduleStrategy(nil, nil).Project(in)
	require.NoError(t, err)

	assertDecimal(t, "1000", projection.ScheduleRows[0].StatePension)
	assertDecimal(t, "1000", projection.ScheduleRows[0].Taxable)
	for _, summary := range projection.TaxYears {
		assert.True(t, summary.ReceivesStatePension)
		assert.True(t, summary.NI.IsZero())
	}
}

func TestScheduleStrategy_RequiresEverySchedule(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.Schedules)
		want   string
	}{
		{name: "pension", modify: func(s *domain.Schedules) { s.PensionWithdrawals = nil }, want: "pension withdrawal"},
		{name: "savings", modify: func(s *domain.Schedules) { s.SavingsWithdrawals = nil }, want: "savings withdrawal"},
		{name: "other income", modify: func(s *domain.Schedules) { s.OtherIncome = nil }, want: "other income"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scheduleInputs()
			tt.modify(&in.Schedules)
			_, err := NewScheduleStrategy(nil, nil).Project(in)
			var insufficient *domain.InsufficientScheduleError
			require.True(t, errors.As(err, &insufficient))
			assert.Equal(t, tt.want, insufficient.Schedule)
		})
	}
}

func TestScheduleStrategy_WarnsAboutIgnoredRows(t *testing.T) {
	in := scheduleInputs()
	in.Schedules.OtherIncome = append(in.Schedules.OtherIncome, domain.WithdrawalRow{Date: date(2030, time.January, 1), Amount: dec("1")})
	logger := &TestLogger{}
	_, err := NewScheduleStrategy(nil, logger).Project(in)
	require.NoError(t, err)
	assert.Contains(t, logger.messages, "WARN: scheduled row %s (%s) falls outside the simulated months and is ignored")
}

func TestScheduleStrategy_RejectsPartnerRowsWithoutPartner(t *testing.T) {
	in := scheduleInputs()
	in.Schedules.PensionWithdrawals = nil
	for _, d := range domain.MonthlyDates(date(2025, time.May, 1), date(2026, time.January, 1)) {
		in.Schedules.PensionWithdrawals = append(in.Schedules.PensionWithdrawals,
			domain.WithdrawalRow{Date: d, Amount: dec("10000"), Taxable: true, Owner: domain.OwnerPartner})
	}

	projection, err := NewScheduleStrategy(nil, nil).Project(in)
	assert.Nil(t, projection)
	var validation *domain.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "pension_withdrawals", validation.Field)
	assert.Contains(t, validation.Message, "01-05-2025")
}

func TestScheduleStrategy_TaxesPartnerRows(t *testing.T) {
	in := scheduleInputs()
	in.Params.Household.Partner = &domain.Person{Name: "Partner", BirthDate: date(1962, time.June, 1), MaxAge: 90}
	in.Schedules.PensionWithdrawals = nil
	for _, d := range domain.MonthlyDates(date(2025, time.May, 1), date(2026, time.January, 1)) {
		in.Schedules.PensionWithdrawals = append(in.Schedules.PensionWithdrawals,
			domain.WithdrawalRow{Date: d, Amount: dec("10000"), Taxable: true, Owner: domain.OwnerPartner})
	}

	projection, err := NewScheduleStrategy(nil, nil).Project(in)
	require.NoError(t, err)

	var partnerTax = dec("0")
	for _, summary := range projection.TaxYears {
		if summary.Owner == domain.OwnerPartner {
			partnerTax = partnerTax.Add(summary.Tax)
		}
	}
	assert.True(t, partnerTax.IsPositive())
	for _, row := range projection.ScheduleRows {
		if row.PensionWithdrawal.IsPositive() {
			assert.True(t, row.Tax.IsPositive(), "row %s", domain.FormatDate(row.Date))
		}
	}
}

func TestScheduleStrategy_WarnsWhenHistoryStartsLate(t *testing.T) {
	in := scheduleInputs()
	in.Holdings.Pensions = []domain.Series{{{Date: date(2025, time.June, 1), Value: dec("100000")}}}
	logger := &TestLogger{}

	projection, err := NewScheduleStrategy(nil, logger).Project(in)
	require.NoError(t, err)
	assert.True(t, projection.ScheduleRows[0].Pension.IsZero())
	assert.Contains(t, logger.messages, "WARN: %s %d starts on %s, after %s; using %s (%s policy)")
}
