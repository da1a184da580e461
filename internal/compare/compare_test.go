package compare

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/pjaos/retirement-finances-sub000/internal/config"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const comparisonYAML = `
household:
  primary: { name: Alex, birth_date: 01-01-1960, max_age: 70 }
accounts:
  - name: Saver
    history: [ { date: 01-01-2024, value: 100000 } ]
pensions:
  - name: SIPP
    history: [ { date: 01-01-2024, value: 200000 } ]
state_pensions:
  - name: Alex
    start_date: 01-01-2027
    history: [ { date: 01-01-2024, value: 12000 } ]
scenarios:
  - name: Modest
    report_start: 01-01-2024
    monthly_budget: 1500
    rates: { savings_interest: 0, pension_growth: 0, state_pension_uprate: 0, budget_increase: 0 }
  - name: Lavish
    report_start: 01-01-2024
    monthly_budget: 6000
    rates: { savings_interest: 0, pension_growth: 0, state_pension_uprate: 0, budget_increase: 0 }
`

func d(y int, m time.Month) time.Time { return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC) }

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	ranOut := d(2025, 3)
	p := &domain.Projection{
		Scenario: "Budget",
		Mode:     domain.ModeBudget,
		Rows: []domain.MonthlyRow{
			{Date: d(2024, 1), Spending: decimal.NewFromInt(100), Total: decimal.NewFromInt(900)},
			{Date: d(2024, 12), Spending: decimal.NewFromInt(100), Total: decimal.NewFromInt(800)},
			{Date: d(2025, 1), Spending: decimal.NewFromInt(100), Total: decimal.NewFromInt(700)},
			{Date: d(2025, 3), Spending: decimal.NewFromInt(40), Total: decimal.Zero, MoneyRanOut: true},
		},
		MoneyRanOut:     true,
		MoneyRanOutDate: &ranOut,
		TaxYears: []domain.TaxYearSummary{
			{Tax: decimal.NewFromInt(10)}, {Tax: decimal.NewFromInt(15)},
		},
	}

	result := NewMetricsCalculator().CalculateMetrics(p)

	assert.Equal(t, "Budget", result.ScenarioName)
	assert.True(t, result.FirstYearIncome.Equal(decimal.NewFromInt(200)))
	assert.True(t, result.LifetimeIncome.Equal(decimal.NewFromInt(340)))
	assert.True(t, result.LifetimeTaxes.Equal(decimal.NewFromInt(25)))
	assert.True(t, result.FinalBalance.IsZero())
	assert.Equal(t, 3, result.MonthsFunded)
	assert.Equal(t, "01-03-2025", result.MoneyRanOutDate)
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()
	base := ComparisonResult{LifetimeIncome: decimal.NewFromInt(1000), MonthsFunded: 100, LifetimeTaxes: decimal.NewFromInt(50)}
	alt := ComparisonResult{LifetimeIncome: decimal.NewFromInt(1100), MonthsFunded: 90, LifetimeTaxes: decimal.NewFromInt(40)}

	got := mc.CalculateComparison(alt, base)

	assert.True(t, got.IncomeDiffFromBase.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.IncomePctFromBase.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, -10, got.MonthsFundedDiff)
	assert.True(t, got.TaxDiffFromBase.Equal(decimal.NewFromInt(-10)))
}

func TestGenerateRecommendations(t *testing.T) {
	base := &ComparisonResult{ScenarioName: "base", LifetimeIncome: decimal.NewFromInt(1000), MonthsFunded: 100, LifetimeTaxes: decimal.NewFromInt(50)}
	set := &ComparisonSet{
		BaseResult: base,
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "rich", LifetimeIncome: decimal.NewFromInt(2000), MonthsFunded: 80, LifetimeTaxes: decimal.NewFromInt(90)},
			{ScenarioName: "frugal", LifetimeIncome: decimal.NewFromInt(900), MonthsFunded: 130, LifetimeTaxes: decimal.NewFromInt(20)},
		},
	}

	recs := GenerateRecommendations(set)

	require.Len(t, recs, 3)
	assert.Contains(t, recs[0], "rich provides £1000")
	assert.Contains(t, recs[1], "frugal keeps money in the pot for 30 more months")
	assert.Contains(t, recs[2], "frugal saves £30")
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{BaseResult: base}))
}

func TestCompareEngine_CompareScenarios(t *testing.T) {
	file, err := config.NewInputParser().LoadFromBytes([]byte(comparisonYAML))
	require.NoError(t, err)

	engine := NewCompareEngine(calculation.NewCalculationEngine())
	set, err := engine.CompareScenarios(context.Background(), file, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "Modest", set.BaseScenarioName)
	require.Len(t, set.AlternativeResults, 1)
	lavish := set.AlternativeResults[0]
	assert.Equal(t, "Lavish", lavish.ScenarioName)
	assert.Less(t, lavish.MonthsFunded, set.BaseResult.MonthsFunded)
	assert.NotEmpty(t, lavish.MoneyRanOutDate)
	assert.Equal(t, lavish.MonthsFunded-set.BaseResult.MonthsFunded, lavish.MonthsFundedDiff)

	table := (&TableFormatter{}).Format(set)
	assert.Contains(t, table, "Modest (base)")
	assert.Contains(t, table, "COMPARISON TO BASE")

	csvText, err := (&CSVFormatter{}).Format(set)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(csvText)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "alternative", records[2][1])

	jsonText, err := (&JSONFormatter{Pretty: true}).Format(set)
	require.NoError(t, err)
	var decoded ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(jsonText), &decoded))
	assert.Equal(t, "Modest", decoded.BaseScenarioName)
	assert.Contains(t, jsonText, "\n  ")

	compact, err := (&JSONFormatter{}).Format(set)
	require.NoError(t, err)
	assert.NotContains(t, compact, "\n")
}

func TestCompareEngine_Errors(t *testing.T) {
	file, err := config.NewInputParser().LoadFromBytes([]byte(comparisonYAML))
	require.NoError(t, err)
	engine := NewCompareEngine(calculation.NewCalculationEngine())

	_, err = engine.CompareScenarios(context.Background(), file, "Missing", nil)
	assert.Error(t, err)

	_, err = engine.CompareScenarios(context.Background(), file, "Modest", []string{"Nope"})
	assert.ErrorContains(t, err, "failed to calculate scenario Nope")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.CompareScenarios(ctx, file, "Modest", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
