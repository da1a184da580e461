package calculation

import (
	"errors"
	"sort"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// BoundaryPolicy decides what InitialValue returns for a date before the first recorded entry.
type BoundaryPolicy int

const (
	// BoundaryFirstValue reuses the earliest recorded value.
	BoundaryFirstValue BoundaryPolicy = iota
	// BoundaryZero treats the balance as not yet existing.
	BoundaryZero
	// BoundaryError fails with ErrBeforeHistory.
	BoundaryError
)

func (p BoundaryPolicy) String() string {
	switch p {
	case BoundaryFirstValue:
		return "first-value"
	case BoundaryZero:
		return "zero"
	case BoundaryError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrBeforeHistory is returned under BoundaryError when the date precedes every entry.
var ErrBeforeHistory = errors.New("date precedes the recorded history")

// InitialValue returns the value of the last entry dated on or before at.
// An empty series is worth zero under every policy except BoundaryError.
func InitialValue(series domain.Series, at time.Time, policy BoundaryPolicy) (decimal.Decimal, error) {
	if len(series) == 0 {
		if policy == BoundaryError {
			return decimal.Zero, ErrBeforeHistory
		}
		return decimal.Zero, nil
	}
	sorted := series.Sorted()
	if at.Before(sorted[0].Date) {
		switch policy {
		case BoundaryZero:
			return decimal.Zero, nil
		case BoundaryError:
			return decimal.Zero, ErrBeforeHistory
		default:
			return sorted[0].Value, nil
		}
	}
	value := sorted[0].Value
	for _, entry := range sorted {
		if entry.Date.After(at) {
			break
		}
		value = entry.Value
	}
	return value, nil
}

// SumInitialValues adds the InitialValue of every series.
func SumInitialValues(list []domain.Series, at time.Time, policy BoundaryPolicy) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range list {
		v, err := InitialValue(s, at, policy)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, nil
}

// warnBeforeHistory logs every series whose first entry is after at, naming the value
// policy puts in its place.
func warnBeforeHistory(logger Logger, label string, list []domain.Series, at time.Time, policy BoundaryPolicy) {
	for i, s := range list {
		if len(s) == 0 {
			continue
		}
		first := s.Sorted()[0]
		if !at.Before(first.Date) {
			continue
		}
		substitute := decimal.Zero
		if policy == BoundaryFirstValue {
			substitute = first.Value
		}
		logger.Warnf("%s %d starts on %s, after %s; using %s (%s policy)",
			label, i+1, domain.FormatDate(first.Date), domain.FormatDate(at), substitute.StringFixed(2), policy)
	}
}

// MergeSeries outer-joins the series on date and sums them. Each series carries its
// latest value forward and counts as zero before its first entry.
func MergeSeries(list []domain.Series) domain.Series {
	seen := map[time.Time]bool{}
	var dates []time.Time
	sortedList := make([]domain.Series, 0, len(list))
	for _, s := range list {
		sorted := s.Sorted()
		sortedList = append(sortedList, sorted)
		for _, entry := range sorted {
			if !seen[entry.Date] {
				seen[entry.Date] = true
				dates = append(dates, entry.Date)
			}
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	merged := make(domain.Series, 0, len(dates))
	cursors := make([]int, len(sortedList))
	current := make([]decimal.Decimal, len(sortedList))
	for i := range current {
		current[i] = decimal.Zero
	}
	for _, d := range dates {
		total := decimal.Zero
		for i, s := range sortedList {
			for cursors[i] < len(s) && !s[cursors[i]].Date.After(d) {
				current[i] = s[cursors[i]].Value
				cursors[i]++
			}
			total = total.Add(current[i])
		}
		merged = append(merged, domain.DatedValue{Date: d, Value: total})
	}
	return merged
}

// Reality merges recorded savings and pension histories into the totals shown against a prediction.
func Reality(h domain.Holdings) *domain.RealityTables {
	savings := MergeSeries(h.Savings)
	pension := MergeSeries(h.Pensions)
	return &domain.RealityTables{
		Savings: savings,
		Pension: pension,
		Total:   MergeSeries([]domain.Series{savings, pension}),
	}
}
