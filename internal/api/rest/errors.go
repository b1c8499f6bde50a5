package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ordimint/mint-engine/internal/api/apierrors"
	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondInternalError responds with an internal server error, logging the cause
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.Error(err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message, details...))
}

// respondDomainError maps errors raised by the sale engine onto HTTP responses.
// Unknown errors are treated as internal.
func respondDomainError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var notEligibleErr *domain.NotEligibleError

	switch {
	case errors.As(err, &validationErr):
		respondValidationError(c, validationErr.Error())
	case errors.As(err, &notEligibleErr):
		c.JSON(http.StatusForbidden, apierrors.NewNotEligibleError(string(notEligibleErr.Reason)))
	case errors.Is(err, domain.ErrOrderNotFound):
		respondNotFound(c, "Order not found")
	case errors.Is(err, domain.ErrBatchNotFound):
		respondNotFound(c, "Batch not found")
	case errors.Is(err, domain.ErrNoPaymentAddress):
		c.JSON(http.StatusServiceUnavailable, apierrors.NewStorageFailureError("No payment address available"))
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, apierrors.NewStaleStateError("Order is not in a state that allows this transition"))
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, apierrors.NewStaleStateError("Concurrent update, retry the request"))
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
