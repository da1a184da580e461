package compare

import (
	"context"
	"fmt"

	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/pjaos/retirement-finances-sub000/internal/config"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareScenarios runs the base scenario and each alternative from the same
// configuration and reports the differences. No alternatives means every other scenario.
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	file *config.File,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {
	base, err := file.Scenario(baseScenarioName)
	if err != nil {
		return nil, err
	}
	baseScenarioName = base.Name

	if len(alternativeScenarioNames) == 0 {
		for _, name := range file.ScenarioNames() {
			if name != baseScenarioName {
				alternativeScenarioNames = append(alternativeScenarioNames, name)
			}
		}
	}

	baseProjection, err := ce.run(ctx, file, baseScenarioName)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseProjection)

	alternatives := []ComparisonResult{}
	for _, altName := range alternativeScenarioNames {
		projection, err := ce.run(ctx, file, altName)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", altName, err)
		}
		altResult := ce.MetricsCalculator.CalculateMetrics(projection)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) run(ctx context.Context, file *config.File, name string) (*domain.Projection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	in, err := file.ToInputs(name)
	if err != nil {
		return nil, err
	}
	return ce.CalcEngine.RunScenario(in)
}
