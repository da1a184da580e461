package calculation

import (
	"fmt"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

// Inputs is everything one projection run reads. Callers pass copies; strategies never
// write back into them.
type Inputs struct {
	Params    domain.ScenarioParameters
	Holdings  domain.Holdings
	Schedules domain.Schedules
}

// ProjectionStrategy is one way of simulating a scenario month by month.
type ProjectionStrategy interface {
	Name() domain.Mode
	Project(in Inputs) (*domain.Projection, error)
}

// CreateProjectionStrategy returns the strategy for mode.
func CreateProjectionStrategy(mode domain.Mode, taxCalc *UKTaxCalculator, logger Logger) (ProjectionStrategy, error) {
	switch mode {
	case domain.ModeBudget, "":
		return NewBudgetStrategy(logger), nil
	case domain.ModeSchedule:
		return NewScheduleStrategy(taxCalc, logger), nil
	default:
		return nil, &domain.ValidationError{Field: "mode", Message: fmt.Sprintf("unknown projection mode %q", mode)}
	}
}

// Horizon lists the simulation months: the 1st of every month from the report start up to
// the later of the two planned death dates.
func Horizon(p domain.ScenarioParameters) []time.Time {
	return domain.MonthlyDates(p.ReportStart, p.Household.LastDeathDate())
}

// ValidateParameters checks the preconditions shared by both strategies.
func ValidateParameters(p domain.ScenarioParameters) error {
	if p.ReportStart.IsZero() {
		return &domain.ValidationError{Field: "report_start", Message: "report start date is required"}
	}
	if !p.Household.Primary.Configured() {
		return &domain.ValidationError{Field: "household.primary.birth_date", Message: "birth date is required"}
	}
	if p.Household.Primary.MaxAge <= 0 {
		return &domain.ValidationError{Field: "household.primary.max_age", Message: "max age must be positive"}
	}
	if p.Household.Partner != nil && p.Household.Partner.Configured() && p.Household.Partner.MaxAge <= 0 {
		return &domain.ValidationError{Field: "household.partner.max_age", Message: "max age must be positive"}
	}
	last := p.Household.LastDeathDate()
	if domain.MonthStart(p.ReportStart).After(last) {
		return &domain.ValidationError{
			Field:   "report_start",
			Message: fmt.Sprintf("report start %s is after the last planned date %s", domain.FormatDate(p.ReportStart), domain.FormatDate(last)),
		}
	}
	return nil
}
