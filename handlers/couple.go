// File: handlers/couple.go
package handlers

import (
	"net/http"

	"wednest/upstream"

	"github.com/gin-gonic/gin"
)

// CoupleHandler serves the couple's dashboard views.
type CoupleHandler struct {
	Backend *upstream.Client
}

// NewCoupleHandler builds a CoupleHandler.
func NewCoupleHandler(backend *upstream.Client) *CoupleHandler {
	return &CoupleHandler{Backend: backend}
}

// CoupleDashboardHandler returns the couple's dashboard payload (profile,
// wedding date, budget).
func (h *CoupleHandler) CoupleDashboardHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := ownSession(c, c.Param("id"))
	if !ok {
		return
	}
	dash, err := h.Backend.FetchCoupleDashboard(c.Request.Context(), sess, sess.UserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondData(c, http.StatusOK, dash, "")
}

// CoupleRequestsHandler lists the couple's requests with vendor references
// populated, for the "Vendors Booked" panel.
func (h *CoupleHandler) CoupleRequestsHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := ownSession(c, c.Param("id"))
	if !ok {
		return
	}
	requests, err := h.Backend.FetchCoupleRequests(c.Request.Context(), sess, sess.UserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondData(c, http.StatusOK, requests, "")
}
