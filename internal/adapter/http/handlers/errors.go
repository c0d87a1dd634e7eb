package handlers

import (
	"context"
	"errors"
	"net/http"

	"assistencia_os/internal/infrastructure/logger"
	"assistencia_os/internal/usecase"
	"assistencia_os/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidStatus  = pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status", http.StatusBadRequest)
)

// mapError translates the use case error taxonomy into the HTTP envelope.
// notFoundCode names the resource for 404s.
func mapError(err error, notFoundCode string) *pkg.AppError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewRetryableError("TIMEOUT", "The operation timed out", err, http.StatusGatewayTimeout)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError(notFoundCode, "Not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status change not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", "Operation not allowed in the current status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPhotoLimit):
		return pkg.NewDomainError("PHOTO_LIMIT_EXCEEDED", "Photo limit exceeded", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainError("UNAUTHENTICATED", "Authentication required", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Operation not allowed for your role", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrPublish):
		return pkg.NewRetryableError("PUBLISH_FAILED", "Could not publish the receipt", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPayment):
		return pkg.NewDomainError("PAYMENT_FAILED", "Payment provider rejected the request", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrRejected):
		return pkg.NewDomainError("RECORD_REJECTED", "The record is too large or malformed to be stored", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFetch), errors.Is(err, usecase.ErrPersist):
		return pkg.NewRetryableError("STORE_UNAVAILABLE", "Store unavailable, try again", err, http.StatusBadGateway)
	default:
		return pkg.Internal(err)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	logError(c, appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeErrorWithDetails(c *gin.Context, appErr *pkg.AppError, details any) {
	logError(c, appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(details))
}

func logError(c *gin.Context, appErr *pkg.AppError) {
	_ = c.Error(appErr)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromGin(c).Error("request failed", zap.String("code", appErr.Code), zap.Error(appErr.Err))
	}
}
