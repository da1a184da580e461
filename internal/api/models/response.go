package models

import (
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrorResponse wraps every error body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes what went wrong.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ProjectionSummary is the stored run without its monthly rows.
type ProjectionSummary struct {
	ID              string                  `json:"id"`
	CreatedAt       time.Time               `json:"created_at"`
	Scenario        string                  `json:"scenario"`
	Mode            domain.Mode             `json:"mode"`
	Months          int                     `json:"months"`
	FinalTotal      decimal.Decimal         `json:"final_total"`
	FinalPension    decimal.Decimal         `json:"final_pension"`
	FinalSavings    decimal.Decimal         `json:"final_savings"`
	MoneyRanOut     bool                    `json:"money_ran_out"`
	MoneyRanOutDate string                  `json:"money_ran_out_date,omitempty"`
	Charts          []string                `json:"charts"`
	TaxYears        []domain.TaxYearSummary `json:"tax_years,omitempty"`
}

// RowsResponse carries the monthly rows of a stored run for whichever mode it used.
type RowsResponse struct {
	ID           string               `json:"id"`
	Mode         domain.Mode          `json:"mode"`
	Rows         []domain.MonthlyRow  `json:"rows,omitempty"`
	ScheduleRows []domain.ScheduleRow `json:"schedule_rows,omitempty"`
}
