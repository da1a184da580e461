package compare

import (
	"fmt"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string      `json:"scenarioName"`
	Mode         domain.Mode `json:"mode"`

	// Key Metrics
	FirstYearIncome decimal.Decimal `json:"firstYearIncome"`
	LifetimeIncome  decimal.Decimal `json:"lifetimeIncome"`
	MonthsFunded    int             `json:"monthsFunded"`
	MoneyRanOutDate string          `json:"moneyRanOutDate,omitempty"`
	FinalBalance    decimal.Decimal `json:"finalBalance"`
	LifetimeTaxes   decimal.Decimal `json:"lifetimeTaxes"`

	// Comparison to Base
	IncomeDiffFromBase decimal.Decimal `json:"incomeDiffFromBase"`
	IncomePctFromBase  decimal.Decimal `json:"incomePctFromBase"`
	MonthsFundedDiff   int             `json:"monthsFundedDiff"`
	TaxDiffFromBase    decimal.Decimal `json:"taxDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from projections
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a projection.
// Income is spending in budget mode and net income in schedule mode.
func (mc *MetricsCalculator) CalculateMetrics(p *domain.Projection) ComparisonResult {
	total, _, _ := p.FinalBalances()
	result := ComparisonResult{
		ScenarioName:    p.Scenario,
		Mode:            p.Mode,
		FirstYearIncome: decimal.Zero,
		LifetimeIncome:  decimal.Zero,
		MonthsFunded:    p.Len(),
		FinalBalance:    total,
		LifetimeTaxes:   decimal.Zero,
	}

	var start time.Time
	add := func(date time.Time, income decimal.Decimal) {
		if start.IsZero() {
			start = date
		}
		result.LifetimeIncome = result.LifetimeIncome.Add(income)
		if date.Before(start.AddDate(1, 0, 0)) {
			result.FirstYearIncome = result.FirstYearIncome.Add(income)
		}
	}
	if p.Mode == domain.ModeSchedule {
		for _, r := range p.ScheduleRows {
			add(r.Date, r.NetIncome)
		}
	} else {
		for _, r := range p.Rows {
			add(r.Date, r.Spending)
		}
	}
	for _, ty := range p.TaxYears {
		result.LifetimeTaxes = result.LifetimeTaxes.Add(ty.Tax)
	}

	if p.MoneyRanOut && p.MoneyRanOutDate != nil {
		result.MoneyRanOutDate = domain.FormatDate(*p.MoneyRanOutDate)
		result.MonthsFunded = 0
		for _, r := range p.Rows {
			if !r.Date.Before(*p.MoneyRanOutDate) {
				break
			}
			result.MonthsFunded++
		}
	}
	return result
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.IncomeDiffFromBase = scenario.LifetimeIncome.Sub(base.LifetimeIncome)

	if !base.LifetimeIncome.IsZero() {
		scenario.IncomePctFromBase = scenario.IncomeDiffFromBase.
			Div(base.LifetimeIncome).
			Mul(decimal.NewFromInt(100))
	}

	scenario.MonthsFundedDiff = scenario.MonthsFunded - base.MonthsFunded
	scenario.TaxDiffFromBase = scenario.LifetimeTaxes.Sub(base.LifetimeTaxes)

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	bestIncome := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.LifetimeIncome.GreaterThan(bestIncome.LifetimeIncome) {
			bestIncome = alt
		}
	}
	if bestIncome != compSet.BaseResult {
		incomeDiff := bestIncome.LifetimeIncome.Sub(compSet.BaseResult.LifetimeIncome)
		recommendations = append(recommendations,
			"Best Income: "+bestIncome.ScenarioName+" provides £"+incomeDiff.StringFixed(0)+
				" more lifetime income than the base scenario")
	}

	bestLongevity := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.MonthsFunded > bestLongevity.MonthsFunded {
			bestLongevity = alt
		}
	}
	if bestLongevity != compSet.BaseResult {
		monthsDiff := bestLongevity.MonthsFunded - compSet.BaseResult.MonthsFunded
		recommendations = append(recommendations,
			"Best Longevity: "+bestLongevity.ScenarioName+" keeps money in the pot for "+
				fmt.Sprintf("%d more months", monthsDiff))
	}

	lowestTax := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.LifetimeTaxes.LessThan(lowestTax.LifetimeTaxes) {
			lowestTax = alt
		}
	}
	if lowestTax != compSet.BaseResult {
		taxSavings := compSet.BaseResult.LifetimeTaxes.Sub(lowestTax.LifetimeTaxes)
		recommendations = append(recommendations,
			"Lowest Taxes: "+lowestTax.ScenarioName+" saves £"+taxSavings.StringFixed(0)+
				" in lifetime taxes")
	}

	return recommendations
}
