package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

// Repeat intervals for withdrawal rows.
const (
	RepeatOnce    = "once"
	RepeatMonthly = "monthly"
	RepeatYearly  = "yearly"
)

// ExpandRow materialises a row into one dated row per occurrence.
func ExpandRow(row RowConfig) ([]domain.WithdrawalRow, error) {
	start, err := domain.ParseDate(row.Date)
	if err != nil {
		return nil, err
	}
	owner, err := domain.ParseOwner(row.Owner)
	if err != nil {
		return nil, err
	}
	count := row.Occurrences
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return nil, fmt.Errorf("occurrences must not be negative")
	}

	var step func(time.Time, int) time.Time
	switch strings.ToLower(row.Repeat) {
	case "", RepeatOnce:
		count = 1
	case RepeatMonthly:
		step = func(t time.Time, n int) time.Time { return addMonths(t, n) }
	case RepeatYearly:
		step = func(t time.Time, n int) time.Time { return addMonths(t, 12*n) }
	default:
		return nil, fmt.Errorf("unknown repeat %q (expected once, monthly or yearly)", row.Repeat)
	}

	rows := make([]domain.WithdrawalRow, 0, count)
	for i := 0; i < count; i++ {
		d := start
		if step != nil {
			d = step(start, i)
		}
		rows = append(rows, domain.WithdrawalRow{
			Date:    d,
			Amount:  row.Amount,
			Note:    row.Note,
			Taxable: row.Taxable,
			Owner:   owner,
		})
	}
	return rows, nil
}

// addMonths moves t forward n months, keeping the day within the target month.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func expandRows(field string, rows []RowConfig) ([]domain.WithdrawalRow, error) {
	var out []domain.WithdrawalRow
	for i, r := range rows {
		expanded, err := ExpandRow(r)
		if err != nil {
			return nil, &domain.ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Message: err.Error()}
		}
		out = append(out, expanded...)
	}
	return out, nil
}
