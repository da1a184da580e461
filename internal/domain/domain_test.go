package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseAndFormatDate(t *testing.T) {
	got, err := ParseDate(" 05-04-2024 ")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 4, 5), got)
	assert.Equal(t, "05-04-2024", FormatDate(got))
	assert.Equal(t, "", FormatDate(time.Time{}))

	for _, bad := range []string{"", "2024-04-05", "31-02-2024", "5/4/2024"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestMonthlyDates(t *testing.T) {
	dates := MonthlyDates(day(2024, 11, 17), day(2025, 2, 1))
	require.Len(t, dates, 4)
	assert.Equal(t, day(2024, 11, 1), dates[0])
	assert.Equal(t, day(2025, 2, 1), dates[3])

	assert.Empty(t, MonthlyDates(day(2025, 3, 1), day(2025, 2, 1)))
	assert.True(t, SameMonth(day(2024, 6, 1), day(2024, 6, 30)))
	assert.False(t, SameMonth(day(2024, 6, 1), day(2025, 6, 1)))
	assert.Equal(t, day(2024, 6, 1), MonthStart(day(2024, 6, 19)))
}

func TestPerson(t *testing.T) {
	p := Person{Name: "Alex", BirthDate: day(1960, 5, 10), MaxAge: 85}

	assert.True(t, p.Configured())
	assert.Equal(t, day(2045, 5, 10), p.DeathDate())
	assert.True(t, p.IsAlive(day(2045, 5, 10)))
	assert.False(t, p.IsAlive(day(2045, 5, 11)))
	assert.Equal(t, 63, p.Age(day(2024, 5, 9)))
	assert.Equal(t, 64, p.Age(day(2024, 5, 10)))

	var nobody Person
	assert.False(t, nobody.Configured())
	assert.False(t, nobody.IsAlive(day(2024, 1, 1)))
	assert.True(t, nobody.DeathDate().IsZero())
}

func TestHousehold(t *testing.T) {
	primary := Person{Name: "Alex", BirthDate: day(1960, 1, 1), MaxAge: 80}
	h := Household{Primary: primary}

	assert.Equal(t, primary, h.Member(OwnerPrimary))
	assert.False(t, h.Member(OwnerPartner).Configured())
	assert.Equal(t, day(2040, 1, 1), h.LastDeathDate())

	h.Partner = &Person{Name: "Sam", BirthDate: day(1965, 1, 1), MaxAge: 85}
	assert.Equal(t, "Sam", h.Member(OwnerPartner).Name)
	assert.Equal(t, day(2050, 1, 1), h.LastDeathDate())
}

func TestParseOwner(t *testing.T) {
	for in, want := range map[string]Owner{"": OwnerPrimary, "primary": OwnerPrimary, "partner": OwnerPartner} {
		got, err := ParseOwner(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseOwner("lodger")
	assert.Error(t, err)
	assert.Equal(t, OwnerPrimary, Owner("").OrPrimary())
	assert.Equal(t, OwnerPartner, OwnerPartner.OrPrimary())
}

func TestSeries(t *testing.T) {
	s := Series{
		{Date: day(2024, 3, 1), Value: decimal.NewFromInt(3)},
		{Date: day(2023, 1, 1), Value: decimal.NewFromInt(1)},
	}

	sorted := s.Sorted()
	assert.Equal(t, day(2023, 1, 1), sorted[0].Date)
	assert.Equal(t, day(2024, 3, 1), s[0].Date, "Sorted must not reorder the receiver")

	last, ok := s.Last()
	require.True(t, ok)
	assert.True(t, last.Value.Equal(decimal.NewFromInt(3)))

	_, ok = Series(nil).Last()
	assert.False(t, ok)
	assert.Nil(t, Series(nil).Clone())

	r := RateSchedule{decimal.NewFromInt(4), decimal.RequireFromString("3.5")}
	assert.Equal(t, "4, 3.5", r.String())
	c := r.Clone()
	c[0] = decimal.Zero
	assert.True(t, r[0].Equal(decimal.NewFromInt(4)))
}

func TestSumInMonth(t *testing.T) {
	rows := []WithdrawalRow{
		{Date: day(2024, 5, 1), Amount: decimal.NewFromInt(100)},
		{Date: day(2024, 5, 20), Amount: decimal.NewFromInt(50)},
		{Date: day(2024, 6, 1), Amount: decimal.NewFromInt(7)},
	}
	assert.True(t, SumInMonth(rows, day(2024, 5, 1)).Equal(decimal.NewFromInt(150)))
	assert.True(t, SumInMonth(rows, day(2025, 5, 1)).IsZero())
}

func TestTaxPeriod(t *testing.T) {
	assert.Equal(t, int64(1), PeriodAnnual.PeriodsPerYear())
	assert.Equal(t, int64(12), PeriodMonthly.PeriodsPerYear())
	assert.Equal(t, int64(26), PeriodFortnightly.PeriodsPerYear())
	assert.Equal(t, int64(52), PeriodWeekly.PeriodsPerYear())

	p, err := ParseTaxPeriod(" Monthly ")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonthly, p)

	p, err = ParseTaxPeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodAnnual, p)

	_, err = ParseTaxPeriod("hourly")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "period", vErr.Field)
}

func TestProjectionHelpers(t *testing.T) {
	p := &Projection{
		Mode: ModeBudget,
		Rows: []MonthlyRow{
			{Total: decimal.NewFromInt(10), Pension: decimal.NewFromInt(6), Savings: decimal.NewFromInt(4)},
			{Total: decimal.NewFromInt(8), Pension: decimal.NewFromInt(5), Savings: decimal.NewFromInt(3)},
		},
		Charts: []ChartTable{{
			Name:    "Totals",
			Columns: []string{"Pension", "Savings"},
			Points: []ChartPoint{
				{Date: day(2024, 1, 1), Values: []decimal.Decimal{decimal.NewFromInt(6), decimal.NewFromInt(4)}},
				{Date: day(2024, 2, 1), Values: []decimal.Decimal{decimal.NewFromInt(5), decimal.NewFromInt(3)}},
			},
		}},
	}

	assert.Equal(t, 2, p.Len())
	total, pension, savings := p.FinalBalances()
	assert.True(t, total.Equal(decimal.NewFromInt(8)))
	assert.True(t, pension.Equal(decimal.NewFromInt(5)))
	assert.True(t, savings.Equal(decimal.NewFromInt(3)))

	chart, ok := p.Chart("Totals")
	require.True(t, ok)
	assert.Len(t, chart.Column("Savings"), 2)
	assert.Nil(t, chart.Column("Missing"))
	_, ok = p.Chart("Nope")
	assert.False(t, ok)

	empty := &Projection{Mode: ModeSchedule}
	assert.Equal(t, 0, empty.Len())
	total, _, _ = empty.FinalBalances()
	assert.True(t, total.IsZero())
}

func TestErrors(t *testing.T) {
	assert.Equal(t, "bad", (&ValidationError{Message: "bad"}).Error())
	assert.Equal(t, "age: bad", (&ValidationError{Field: "age", Message: "bad"}).Error())
	assert.Equal(t, "invalid rate schedule: empty", (&InvalidScheduleError{Reason: "empty"}).Error())
	assert.Equal(t, "invalid rate schedule growth: empty", (&InvalidScheduleError{Name: "growth", Reason: "empty"}).Error())
	assert.Contains(t, (&InsufficientScheduleError{Schedule: "pension"}).Error(), "pension schedule is empty")

	cause := &InvalidScheduleError{Name: "growth", Reason: "empty"}
	wrapped := fmt.Errorf("loading: %w", &ValidationError{Field: "rates.growth", Message: cause.Error(), Err: cause})
	var invalid *InvalidScheduleError
	assert.True(t, errors.As(wrapped, &invalid))
	var validation *ValidationError
	assert.True(t, errors.As(wrapped, &validation))
	assert.Nil(t, (&ValidationError{Message: "bad"}).Unwrap())
}
