package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DatedValue is one (date, value) entry of a balance history or schedule.
type DatedValue struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Series is a date-ordered sequence of values for one account, pension or table.
type Series []DatedValue

// Sorted returns a copy of s ordered by date.
func (s Series) Sorted() Series {
	out := s.Clone()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Clone returns an independent copy of s.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// Last returns the most recent entry, or false when s is empty.
func (s Series) Last() (DatedValue, bool) {
	if len(s) == 0 {
		return DatedValue{}, false
	}
	sorted := s.Sorted()
	return sorted[len(sorted)-1], true
}

// RateSchedule holds yearly percentages indexed by years since the simulation start.
type RateSchedule []decimal.Decimal

// Clone returns an independent copy of r.
func (r RateSchedule) Clone() RateSchedule {
	if r == nil {
		return nil
	}
	out := make(RateSchedule, len(r))
	copy(out, r)
	return out
}

// String renders the schedule the way it is written in configuration, e.g. "4, 3.5, 3".
func (r RateSchedule) String() string {
	s := ""
	for i, v := range r {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s
}
