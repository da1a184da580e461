package calculation

import (
	"fmt"
	"strings"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ParseRateSchedule parses a single number or a comma separated list such as "4, 3.5, 3".
func ParseRateSchedule(name, text string) (domain.RateSchedule, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &domain.InvalidScheduleError{Name: name, Reason: "no rates given"}
	}
	parts := strings.Split(text, ",")
	schedule := make(domain.RateSchedule, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, &domain.InvalidScheduleError{Name: name, Reason: fmt.Sprintf("empty entry in %q", text)}
		}
		rate, err := decimal.NewFromString(part)
		if err != nil {
			return nil, &domain.InvalidScheduleError{Name: name, Reason: fmt.Sprintf("%q is not a number", part)}
		}
		schedule = append(schedule, rate)
	}
	return schedule, nil
}

// ResolveRate returns the percentage for a zero-based year index.
// Indexes past the end of the schedule reuse its last value.
func ResolveRate(schedule domain.RateSchedule, yearIndex int) (decimal.Decimal, error) {
	if len(schedule) == 0 {
		return decimal.Zero, &domain.InvalidScheduleError{Reason: "schedule is empty"}
	}
	if yearIndex < 0 {
		yearIndex = 0
	}
	if yearIndex >= len(schedule) {
		return schedule[len(schedule)-1], nil
	}
	return schedule[yearIndex], nil
}

// ApplyRate returns value * (1 + rate/100) for the rate at yearIndex.
func ApplyRate(value decimal.Decimal, schedule domain.RateSchedule, yearIndex int) (decimal.Decimal, error) {
	return ApplyRateDivided(value, schedule, yearIndex, 1)
}

// ApplyRateDivided returns value * (1 + rate/divisor/100), e.g. divisor 12 for a monthly share of a yearly rate.
func ApplyRateDivided(value decimal.Decimal, schedule domain.RateSchedule, yearIndex int, divisor int64) (decimal.Decimal, error) {
	rate, err := ResolveRate(schedule, yearIndex)
	if err != nil {
		return decimal.Zero, err
	}
	if divisor == 0 {
		divisor = 1
	}
	factor := one.Add(rate.Div(decimal.NewFromInt(divisor)).Div(hundred))
	return value.Mul(factor), nil
}
