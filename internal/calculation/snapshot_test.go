package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func history() domain.Series {
	// Deliberately out of order.
	return domain.Series{
		{Date: date(2024, time.March, 1), Value: dec("150")},
		{Date: date(2024, time.January, 1), Value: dec("100")},
		{Date: date(2024, time.June, 15), Value: dec("175")},
	}
}

func TestInitialValue(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "exact first entry", at: date(2024, time.January, 1), want: "100"},
		{name: "between entries", at: date(2024, time.February, 10), want: "100"},
		{name: "exact later entry", at: date(2024, time.March, 1), want: "150"},
		{name: "after last entry", at: date(2030, time.January, 1), want: "175"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, policy := range []BoundaryPolicy{BoundaryFirstValue, BoundaryZero, BoundaryError} {
				got, err := InitialValue(history(), tt.at, policy)
				require.NoError(t, err, policy.String())
				assertDecimal(t, tt.want, got)
			}
		})
	}
}

func TestInitialValue_BeforeHistory(t *testing.T) {
	before := date(2023, time.December, 1)

	first, err := InitialValue(history(), before, BoundaryFirstValue)
	require.NoError(t, err)
	assertDecimal(t, "100", first)

	zero, err := InitialValue(history(), before, BoundaryZero)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = InitialValue(history(), before, BoundaryError)
	assert.True(t, errors.Is(err, ErrBeforeHistory))
}

func TestInitialValue_EmptySeries(t *testing.T) {
	got, err := InitialValue(nil, date(2024, time.January, 1), BoundaryFirstValue)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = InitialValue(nil, date(2024, time.January, 1), BoundaryError)
	assert.Error(t, err)
}

func TestInitialValue_DoesNotReorderCallerSeries(t *testing.T) {
	h := history()
	_, err := InitialValue(h, date(2024, time.April, 1), BoundaryZero)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 1), h[0].Date)
}

func TestSumInitialValues(t *testing.T) {
	other := domain.Series{{Date: date(2024, time.February, 1), Value: dec("20")}}
	got, err := SumInitialValues([]domain.Series{history(), other}, date(2024, time.March, 1), BoundaryZero)
	require.NoError(t, err)
	assertDecimal(t, "170", got)

	got, err = SumInitialValues([]domain.Series{history(), other}, date(2024, time.January, 15), BoundaryZero)
	require.NoError(t, err)
	assertDecimal(t, "100", got)
}

func TestMergeSeries(t *testing.T) {
	a := domain.Series{
		{Date: date(2024, time.January, 1), Value: dec("100")},
		{Date: date(2024, time.March, 1), Value: dec("150")},
	}
	b := domain.Series{
		{Date: date(2024, time.February, 1), Value: dec("50")},
		{Date: date(2024, time.April, 1), Value: dec("0")},
	}

	merged := MergeSeries([]domain.Series{a, b})
	require.Len(t, merged, 4)
	want := []string{"100", "150", "200", "150"}
	for i, w := range want {
		assertDecimal(t, w, merged[i].Value)
	}
	assert.Equal(t, date(2024, time.April, 1), merged[3].Date)
}

func TestMergeSeries_SharedDates(t *testing.T) {
	a := domain.Series{{Date: date(2024, time.January, 1), Value: dec("10")}}
	b := domain.Series{{Date: date(2024, time.January, 1), Value: dec("5")}}
	merged := MergeSeries([]domain.Series{a, b})
	require.Len(t, merged, 1)
	assertDecimal(t, "15", merged[0].Value)

	assert.Empty(t, MergeSeries(nil))
}

func TestReality(t *testing.T) {
	h := domain.Holdings{
		Savings:  []domain.Series{{{Date: date(2024, time.January, 1), Value: dec("1000")}}},
		Pensions: []domain.Series{{{Date: date(2024, time.February, 1), Value: dec("500")}}},
	}
	reality := Reality(h)
	require.Len(t, reality.Total, 2)
	assertDecimal(t, "1000", reality.Total[0].Value)
	assertDecimal(t, "1500", reality.Total[1].Value)
}
