package config

import (
	"testing"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRow(t *testing.T) {
	d := func(y int, m time.Month, day int) time.Time { return time.Date(y, m, day, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name  string
		row   RowConfig
		dates []time.Time
	}{
		{"single", RowConfig{Date: "01-08-2024"}, []time.Time{d(2024, 8, 1)}},
		{"once ignores occurrences", RowConfig{Date: "01-08-2024", Repeat: "once", Occurrences: 4}, []time.Time{d(2024, 8, 1)}},
		{"monthly clamps month end", RowConfig{Date: "31-01-2024", Repeat: "monthly", Occurrences: 3},
			[]time.Time{d(2024, 1, 31), d(2024, 2, 29), d(2024, 3, 31)}},
		{"yearly", RowConfig{Date: "29-02-2024", Repeat: "Yearly", Occurrences: 2},
			[]time.Time{d(2024, 2, 29), d(2025, 2, 28)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.row.Amount = decimal.NewFromInt(100)
			rows, err := ExpandRow(tt.row)
			require.NoError(t, err)
			require.Len(t, rows, len(tt.dates))
			for i, r := range rows {
				assert.Equal(t, tt.dates[i], r.Date)
				assert.True(t, r.Amount.Equal(decimal.NewFromInt(100)))
				assert.Equal(t, domain.OwnerPrimary, r.Owner)
			}
		})
	}
}

func TestExpandRowCarriesFields(t *testing.T) {
	rows, err := ExpandRow(RowConfig{Date: "05-04-2025", Amount: decimal.NewFromInt(50), Note: "gift", Taxable: true, Owner: "partner"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "gift", rows[0].Note)
	assert.True(t, rows[0].Taxable)
	assert.Equal(t, domain.OwnerPartner, rows[0].Owner)
}

func TestExpandRowErrors(t *testing.T) {
	for _, row := range []RowConfig{
		{Date: "2024-08-01"},
		{Date: "01-08-2024", Owner: "dog"},
		{Date: "01-08-2024", Repeat: "daily"},
		{Date: "01-08-2024", Repeat: "monthly", Occurrences: -1},
	} {
		_, err := ExpandRow(row)
		assert.Error(t, err, "%+v", row)
	}
}
