// File: handlers/vendor.go
package handlers

import (
	"net/http"

	"wednest/services/directory"
	"wednest/upstream"

	"github.com/gin-gonic/gin"
)

// VendorHandler serves the vendor directory and the vendor's own views.
type VendorHandler struct {
	Directory directory.Service
	Backend   *upstream.Client
}

// NewVendorHandler builds a VendorHandler.
func NewVendorHandler(dir directory.Service, backend *upstream.Client) *VendorHandler {
	return &VendorHandler{Directory: dir, Backend: backend}
}

// VendorsByTypeHandler lists vendors for an exact-match category tag.
// Public: the category screens render before login.
func (h *VendorHandler) VendorsByTypeHandler(c *gin.Context) {
	logger := getLogger(c)

	vendorType := c.Param("type")
	vendors, err := h.Directory.VendorsByType(c.Request.Context(), nil, vendorType)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondData(c, http.StatusOK, vendors, "")
}

// VendorDetailsHandler returns one vendor's full record. A nonexistent id is
// a 404 with an error envelope, rendered by the caller as a message.
func (h *VendorHandler) VendorDetailsHandler(c *gin.Context) {
	logger := getLogger(c)

	vendor, err := h.Directory.VendorDetails(c.Request.Context(), nil, c.Param("vendorId"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondData(c, http.StatusOK, vendor, "")
}

// VendorDashboardHandler returns the vendor's own dashboard payload.
func (h *VendorHandler) VendorDashboardHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := ownSession(c, c.Param("id"))
	if !ok {
		return
	}
	dash, err := h.Backend.FetchVendorDashboard(c.Request.Context(), sess, sess.UserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondData(c, http.StatusOK, dash, "")
}

// VendorRequestsHandler lists the requests addressed to the vendor for the
// bookings screen.
func (h *VendorHandler) VendorRequestsHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := ownSession(c, c.Param("id"))
	if !ok {
		return
	}
	requests, err := h.Backend.FetchVendorRequests(c.Request.Context(), sess, sess.UserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondData(c, http.StatusOK, requests, "")
}
