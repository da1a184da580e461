package calculation

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// moneyPlaces bounds the precision carried between simulation steps.
	moneyPlaces  = 8
	factorPlaces = 16
)

var daysPerYear = decimal.NewFromInt(365)

// MonthlyGrowth is the growth earned by balance over days at an annual percentage rate,
// compounded daily. Non-positive balances earn nothing.
func MonthlyGrowth(balance, annualRate decimal.Decimal, days int) decimal.Decimal {
	if !balance.IsPositive() || days <= 0 {
		return decimal.Zero
	}
	daily := annualRate.Div(hundred).Div(daysPerYear)
	factor := one.Add(daily).Pow(decimal.NewFromInt(int64(days))).Round(factorPlaces)
	return balance.Mul(factor.Sub(one)).Round(moneyPlaces)
}

// DaysBetween counts whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
