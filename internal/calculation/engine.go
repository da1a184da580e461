package calculation

import (
	"fmt"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates projections and tax calculations
type CalculationEngine struct {
	TaxCalc *UKTaxCalculator
	Logger  Logger
	// OverlayReality attaches merged recorded histories to every projection.
	OverlayReality bool
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxCalc: NewUKTaxCalculator2024(),
		Logger:  NopLogger{},
	}
}

// SetLogger installs a logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(logger Logger) {
	ce.Logger = loggerOrNop(logger)
}

// RunScenario evaluates one scenario with the strategy its mode selects.
func (ce *CalculationEngine) RunScenario(in Inputs) (*domain.Projection, error) {
	strategy, err := CreateProjectionStrategy(in.Params.Mode, ce.TaxCalc, ce.Logger)
	if err != nil {
		return nil, err
	}
	projection, err := strategy.Project(in)
	if err != nil {
		ce.Logger.Errorf("scenario %q failed: %v", in.Params.Name, err)
		return nil, fmt.Errorf("scenario %q: %w", in.Params.Name, err)
	}
	if ce.OverlayReality {
		projection.Reality = Reality(in.Holdings)
	}
	return projection, nil
}

// CalcNetPay calculates UK tax, NI and net pay for gross pay over a period.
func (ce *CalculationEngine) CalcNetPay(gross decimal.Decimal, receivesStatePension bool, period domain.TaxPeriod) domain.TaxResult {
	return ce.TaxCalc.CalcNetPay(gross, receivesStatePension, period)
}
