// File: handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"wednest/services/cart"
	"wednest/services/profile"
	"wednest/services/request"
	"wednest/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondData writes the success envelope every backend response follows.
func respondData(c *gin.Context, httpStatus int, data any, message string) {
	c.JSON(httpStatus, gin.H{"status": "success", "data": data, "message": message})
}

// respondMessage writes a success envelope without a data payload.
func respondMessage(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"status": "success", "message": message})
}

// respondServiceError maps service and upstream failures onto HTTP statuses,
// always rendering the error envelope instead of crashing the view.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	status := http.StatusBadGateway

	switch {
	case errors.Is(err, cart.ErrNotAuthenticated),
		errors.Is(err, request.ErrNotAuthenticated),
		errors.Is(err, profile.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, cart.ErrDuplicateVendor),
		errors.Is(err, cart.ErrEntryLocked),
		errors.Is(err, request.ErrDuplicateRequest),
		errors.Is(err, request.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, profile.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, profile.ErrMissingFields):
		status = http.StatusBadRequest
	case upstream.IsUnauthenticated(err):
		status = http.StatusUnauthorized
	case upstream.IsNotFound(err):
		status = http.StatusNotFound
	case upstream.IsValidation(err):
		status = http.StatusBadRequest
	case upstream.IsDuplicate(err):
		status = http.StatusConflict
	case upstream.IsNetwork(err):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Upstream failure", zap.Error(err))
	} else {
		logger.Warn("Request rejected", zap.Error(err))
	}
	c.JSON(status, gin.H{"status": "error", "message": err.Error()})
}
