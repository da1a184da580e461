package calculation

import (
	"errors"
	"testing"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRate_CarryForward(t *testing.T) {
	rate, err := ResolveRate(rates("1.0", "2.0"), 5)
	require.NoError(t, err)
	assertDecimal(t, "2", rate)

	first, err := ResolveRate(rates("3.5"), 0)
	require.NoError(t, err)
	later, err := ResolveRate(rates("3.5"), 100)
	require.NoError(t, err)
	assertDecimal(t, "3.5", first)
	assertDecimal(t, "3.5", later)

	inRange, err := ResolveRate(rates("4", "3.5", "3.2"), 1)
	require.NoError(t, err)
	assertDecimal(t, "3.5", inRange)
}

func TestResolveRate_EmptySchedule(t *testing.T) {
	_, err := ResolveRate(nil, 0)
	require.Error(t, err)
	var scheduleErr *domain.InvalidScheduleError
	assert.True(t, errors.As(err, &scheduleErr), "should be an InvalidScheduleError")
}

func TestApplyRate(t *testing.T) {
	got, err := ApplyRate(dec("100"), rates("2.5"), 0)
	require.NoError(t, err)
	assertDecimal(t, "102.5", got)

	monthly, err := ApplyRateDivided(dec("1200"), rates("12"), 3, 12)
	require.NoError(t, err)
	assertDecimal(t, "1212", monthly)

	_, err = ApplyRate(dec("100"), domain.RateSchedule{}, 0)
	assert.Error(t, err)
}

func TestParseRateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "single value", input: "2", want: []string{"2"}},
		{name: "list with spaces", input: "4, 3.5, 3.2, 3", want: []string{"4", "3.5", "3.2", "3"}},
		{name: "negative rate", input: "-1.5,2", want: []string{"-1.5", "2"}},
		{name: "empty", input: "  ", wantErr: true},
		{name: "not a number", input: "4, abc", wantErr: true},
		{name: "trailing comma", input: "4,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRateSchedule("savings interest", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var scheduleErr *domain.InvalidScheduleError
				assert.True(t, errors.As(err, &scheduleErr))
				assert.Contains(t, err.Error(), "savings interest")
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assertDecimal(t, w, got[i])
			}
		})
	}
}
