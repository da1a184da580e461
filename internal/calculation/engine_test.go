package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.TaxCalc, "Should initialize tax calculator")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	// Test setting a custom logger
	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)

	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	// Test setting nil logger (should use no-op logger)
	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_RunScenario_SelectsStrategy(t *testing.T) {
	engine := NewCalculationEngine()

	budget, err := engine.RunScenario(referenceInputs())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeBudget, budget.Mode)
	assert.NotEmpty(t, budget.Rows)
	assert.Empty(t, budget.ScheduleRows)
	assert.Nil(t, budget.Reality)

	schedule, err := engine.RunScenario(scheduleInputs())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeSchedule, schedule.Mode)
	assert.NotEmpty(t, schedule.ScheduleRows)
	assert.Equal(t, schedule.Len(), len(schedule.ScheduleRows))
}

func TestCalculationEngine_RunScenario_UnknownMode(t *testing.T) {
	engine := NewCalculationEngine()
	in := referenceInputs()
	in.Params.Mode = "annuity"

	result, err := engine.RunScenario(in)
	assert.Nil(t, result)
	var validation *domain.ValidationError
	assert.True(t, errors.As(err, &validation))
}

func TestCalculationEngine_RunScenario_WrapsErrors(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)
	in := scheduleInputs()
	in.Schedules.OtherIncome = nil

	_, err := engine.RunScenario(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "schedule"`)
	var insufficient *domain.InsufficientScheduleError
	assert.True(t, errors.As(err, &insufficient))
	assert.Contains(t, logger.messages, "ERROR: scenario %q failed: %v")
}

func TestCalculationEngine_OverlayReality(t *testing.T) {
	engine := NewCalculationEngine()
	engine.OverlayReality = true
	in := referenceInputs()
	in.Holdings.Savings = append(in.Holdings.Savings, domain.Series{{Date: date(2024, time.June, 1), Value: dec("500")}})

	projection, err := engine.RunScenario(in)
	require.NoError(t, err)
	require.NotNil(t, projection.Reality)
	assertDecimal(t, "100500", projection.Reality.Savings[len(projection.Reality.Savings)-1].Value)
	assertDecimal(t, "150500", projection.Reality.Total[len(projection.Reality.Total)-1].Value)
}

func TestCalculationEngine_CalcNetPay(t *testing.T) {
	result := NewCalculationEngine().CalcNetPay(dec("45000"), false, domain.PeriodAnnual)
	assertDecimal(t, "35919.60", result.Net)
}

func TestCreateProjectionStrategy(t *testing.T) {
	tests := []struct {
		mode     domain.Mode
		expected domain.Mode
	}{
		{mode: domain.ModeBudget, expected: domain.ModeBudget},
		{mode: "", expected: domain.ModeBudget},
		{mode: domain.ModeSchedule, expected: domain.ModeSchedule},
	}
	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			strategy, err := CreateProjectionStrategy(tt.mode, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strategy.Name())
		})
	}
}
