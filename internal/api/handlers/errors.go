package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pjaos/retirement-finances-sub000/internal/api/models"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// respondProjectionError maps engine errors onto HTTP statuses.
func respondProjectionError(c *gin.Context, err error) {
	var validation *domain.ValidationError
	var invalidSchedule *domain.InvalidScheduleError
	var insufficient *domain.InsufficientScheduleError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
				Details: map[string]interface{}{"field": validation.Field},
			},
		})
	case errors.As(err, &invalidSchedule):
		respondError(c, http.StatusBadRequest, "INVALID_RATE_SCHEDULE", err.Error())
	case errors.As(err, &insufficient):
		respondError(c, http.StatusUnprocessableEntity, "INSUFFICIENT_SCHEDULE", err.Error())
	case errors.Is(err, domain.ErrMissingStatePension):
		respondError(c, http.StatusUnprocessableEntity, "MISSING_STATE_PENSION", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "PROJECTION_ERROR", err.Error())
	}
}
