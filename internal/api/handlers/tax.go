package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pjaos/retirement-finances-sub000/internal/api/models"
	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

// TaxHandler serves net pay calculations
type TaxHandler struct {
	engine *calculation.CalculationEngine
}

// NewTaxHandler creates a new tax handler
func NewTaxHandler(engine *calculation.CalculationEngine) *TaxHandler {
	return &TaxHandler{engine: engine}
}

// CalcNetPay handles POST /api/v1/tax
func (h *TaxHandler) CalcNetPay(c *gin.Context) {
	var req models.TaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if req.Gross == nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "gross is required")
		return
	}
	if req.Gross.IsNegative() {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "gross must not be negative")
		return
	}
	period, err := domain.ParseTaxPeriod(req.Period)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	c.JSON(http.StatusOK, h.engine.CalcNetPay(*req.Gross, req.ReceivesStatePension, period))
}
