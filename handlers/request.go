// File: handlers/request.go
package handlers

import (
	"net/http"

	"wednest/middleware"
	"wednest/services/request"

	"github.com/gin-gonic/gin"
)

// RequestHandler serves the request lifecycle: couples create, vendors
// accept/decline/confirm, anyone involved reads status.
type RequestHandler struct {
	Svc request.Service
}

// NewRequestHandler builds a RequestHandler.
func NewRequestHandler(svc request.Service) *RequestHandler {
	return &RequestHandler{Svc: svc}
}

// CreateRequestHandler files a service request to a vendor. Duplicate
// submission is refused; the requested flag is sticky once set.
func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "You must be logged in as a couple to request."})
		return
	}

	var req struct {
		VendorID string `json:"vendor_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.VendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "vendor_id is required"})
		return
	}

	if err := h.Svc.Create(c.Request.Context(), sess, req.VendorID); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Request sent successfully!")
}

// RequestStatusHandler reads a request's current status.
func (h *RequestHandler) RequestStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Insufficient authorization"})
		return
	}

	status, err := h.Svc.Status(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"status": status}, "")
}

// UpdateRequestHandler applies a vendor's accept/decline/confirm action.
// Illegal transitions (anything out of a terminal state) are refused.
func (h *RequestHandler) UpdateRequestHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Insufficient authorization"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "status is required"})
		return
	}

	if err := h.Svc.UpdateStatus(c.Request.Context(), sess, c.Param("id"), req.Status); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondMessage(c, http.StatusOK, "Request updated")
}
