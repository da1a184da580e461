package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyGrowth(t *testing.T) {
	assertDecimal(t, "0.1", MonthlyGrowth(dec("1000"), dec("3.65"), 1))
	assertDecimal(t, "0.20001", MonthlyGrowth(dec("1000"), dec("3.65"), 2))
	assert.True(t, MonthlyGrowth(dec("1000"), dec("0"), 31).IsZero())
	assert.True(t, MonthlyGrowth(dec("-500"), dec("5"), 31).IsZero(), "overdrawn balances earn nothing")
	assert.True(t, MonthlyGrowth(dec("1000"), dec("5"), 0).IsZero())
	assert.True(t, MonthlyGrowth(dec("1000"), dec("-2"), 30).IsNegative())
}

func TestMonthlyGrowth_CompoundsDaily(t *testing.T) {
	simple := dec("100000").Mul(dec("5")).Div(dec("100")).Mul(dec("31")).Div(dec("365"))
	compound := MonthlyGrowth(dec("100000"), dec("5"), 31)
	assert.True(t, compound.GreaterThan(simple))
	assert.True(t, compound.LessThan(simple.Add(dec("1"))))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 31, DaysBetween(date(2025, time.January, 1), date(2025, time.February, 1)))
	assert.Equal(t, 29, DaysBetween(date(2024, time.February, 1), date(2024, time.March, 1)))
}
