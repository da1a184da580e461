package models

import (
	"github.com/pjaos/retirement-finances-sub000/internal/config"
	"github.com/shopspring/decimal"
)

// TaxRequest is the body of POST /api/v1/tax
type TaxRequest struct {
	Gross                *decimal.Decimal `json:"gross"`
	Period               string           `json:"period,omitempty"` // annual, monthly, fortnightly, weekly; default annual
	ReceivesStatePension bool             `json:"receives_state_pension,omitempty"`
}

// ProjectionRequest is the body of POST /api/v1/projection. Exactly one of
// Config and ConfigYAML must be set.
type ProjectionRequest struct {
	Config     *config.File `json:"config,omitempty"`
	ConfigYAML string       `json:"config_yaml,omitempty"`
	Scenario   string       `json:"scenario,omitempty"` // default: first scenario
	Overlay    bool         `json:"overlay,omitempty"`  // attach recorded history
}
