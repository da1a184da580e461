package calculation

import (
	"fmt"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// StatePensionCalculator produces monthly state pension income over a simulation horizon.
//
// The annual amount is anchored at the pension's start date. Uprating follows the UK cycle:
// each time the horizon passes into May the running annual amount is increased by the
// uprate schedule, provided the pension was already in payment before that month.
// Rollovers before the first payment still advance the schedule index but leave the
// amount unchanged, so the entitlement recorded at the start date is what is first paid.
type StatePensionCalculator struct {
	Uprate domain.RateSchedule
	Policy BoundaryPolicy
}

// NewStatePensionCalculator creates a calculator for the given uprate schedule.
func NewStatePensionCalculator(uprate domain.RateSchedule, policy BoundaryPolicy) *StatePensionCalculator {
	return &StatePensionCalculator{Uprate: uprate, Policy: policy}
}

// Series returns the monthly entitlement of one pension for each date.
// Payment stops once the owner is no longer alive and never resumes.
func (c *StatePensionCalculator) Series(pension domain.StatePension, owner domain.Person, dates []time.Time) ([]decimal.Decimal, error) {
	monthly := make([]decimal.Decimal, len(dates))
	if len(dates) == 0 {
		return monthly, nil
	}
	annual, err := InitialValue(pension.History, pension.StartDate, c.Policy)
	if err != nil {
		return nil, fmt.Errorf("state pension %s: %w", pension.Name, err)
	}

	firstPaid := domain.MonthStart(pension.StartDate)
	if pension.StartDate.Day() > 1 {
		firstPaid = firstPaid.AddDate(0, 1, 0)
	}
	rollovers := 0
	previous := dates[0].AddDate(0, -4, 0)
	for i, d := range dates {
		shifted := d.AddDate(0, -4, 0)
		if i > 0 && shifted.Year() != previous.Year() {
			if firstPaid.Before(d) {
				annual, err = ApplyRate(annual, c.Uprate, rollovers)
				if err != nil {
					return nil, fmt.Errorf("state pension %s uprate: %w", pension.Name, err)
				}
				annual = annual.Round(moneyPlaces)
			}
			rollovers++
		}
		previous = shifted

		if !d.Before(firstPaid) && owner.IsAlive(d) {
			monthly[i] = annual.Div(monthsPerYear).Round(moneyPlaces)
		} else {
			monthly[i] = decimal.Zero
		}
	}
	return monthly, nil
}

// OwnerSeries sums the series of every pension belonging to owner.
func (c *StatePensionCalculator) OwnerSeries(h domain.Household, pensions []domain.StatePension, owner domain.Owner, dates []time.Time) ([]decimal.Decimal, error) {
	total := zeros(len(dates))
	for _, p := range pensions {
		if p.Owner.OrPrimary() != owner {
			continue
		}
		s, err := c.Series(p, h.Member(owner), dates)
		if err != nil {
			return nil, err
		}
		for i := range total {
			total[i] = total[i].Add(s[i])
		}
	}
	return total, nil
}

// HouseholdSeries sums both owners' state pensions, each computed independently.
func (c *StatePensionCalculator) HouseholdSeries(h domain.Household, pensions []domain.StatePension, dates []time.Time) ([]decimal.Decimal, error) {
	if len(pensions) == 0 {
		return nil, domain.ErrMissingStatePension
	}
	total := zeros(len(dates))
	for _, owner := range []domain.Owner{domain.OwnerPrimary, domain.OwnerPartner} {
		s, err := c.OwnerSeries(h, pensions, owner, dates)
		if err != nil {
			return nil, err
		}
		for i := range total {
			total[i] = total[i].Add(s[i])
		}
	}
	return total, nil
}

func zeros(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}
