// Package httputil implements request binding and error response helpers
// shared by all controllers.
package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ynam/backend/internal/budget"
	"github.com/ynam/backend/internal/models"
	"gorm.io/gorm"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"Not enough TBB (only £12.34 available)"`
}

// NewError writes an error response with an explicit status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// Status maps an error to the HTTP status it should be reported with.
// Validation failures from the calculation core are client errors, not
// server errors.
func Status(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, models.ErrMonthHasNoTBB),
		errors.Is(err, models.ErrNoAllocations),
		errors.Is(err, models.ErrCategoryNotFound):
		return http.StatusNotFound

	case errors.Is(err, budget.ErrAmountNotPositive),
		errors.Is(err, budget.ErrNotEnoughTBB),
		errors.Is(err, budget.ErrRemoveMoreThanAllocated),
		errors.Is(err, budget.ErrTransferMoreThanAllocated),
		errors.Is(err, models.ErrSameCategory),
		errors.Is(err, models.ErrAllocationNegative),
		errors.Is(err, models.ErrCategoryNameEmpty),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, ErrInvalidQuery):
		return http.StatusBadRequest

	case errors.Is(err, models.ErrTransactionExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes the error response for an error, deriving the status
// with Status. Server errors are logged with the request id, client
// errors are the caller's problem and only reported back.
func HandleError(c *gin.Context, err error) {
	status := Status(err)

	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err)
	}

	NewError(c, status, err)
}
