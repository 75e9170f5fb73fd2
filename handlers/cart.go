// File: handlers/cart.go
package handlers

import (
	"net/http"

	"wednest/middleware"
	"wednest/models"
	"wednest/services/cart"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the aggregated cart and its mutations.
type CartHandler struct {
	Svc cart.Service
}

// NewCartHandler builds a CartHandler.
func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{Svc: svc}
}

// GetCartHandler returns the display-ready cart aggregate for the couple:
// entries with vendor details and request status, total cost, and the budget
// reconciliation.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := ownSession(c, c.Param("coupleId"))
	if !ok {
		return
	}

	view, err := h.Svc.AggregateCart(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondData(c, http.StatusOK, view, "")
}

// AddToCartHandler adds a vendor to the couple's cart.
func (h *CartHandler) AddToCartHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Insufficient authorization"})
		return
	}

	var req struct {
		VendorID string `json:"vendor_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.VendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "vendor_id is required"})
		return
	}

	if err := h.Svc.AddVendor(c.Request.Context(), sess, req.VendorID); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondMessage(c, http.StatusOK, "Vendor added to cart")
}

// RemoveFromCartHandler removes a cart entry unless the vendor has confirmed
// the booking.
func (h *CartHandler) RemoveFromCartHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Insufficient authorization"})
		return
	}

	var req struct {
		VendorID string `json:"vendor_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.VendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "vendor_id is required"})
		return
	}

	if err := h.Svc.RemoveVendor(c.Request.Context(), sess, req.VendorID); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondMessage(c, http.StatusOK, "Item removed from cart.")
}

// CheckoutHandler lists the accepted (locked) entries with their total.
func (h *CartHandler) CheckoutHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := ownSession(c, c.Param("coupleId"))
	if !ok {
		return
	}

	view, err := h.Svc.Checkout(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondData(c, http.StatusOK, view, "")
}

// ConfirmPaymentHandler simulates payment for the locked entries. Real
// payment processing belongs to the backend; the front end only needs the
// confirmation hand-off.
func (h *CartHandler) ConfirmPaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := ownSession(c, c.Param("coupleId"))
	if !ok {
		return
	}

	view, err := h.Svc.Checkout(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	if len(view.Entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "No locked services to checkout."})
		return
	}
	respondData(c, http.StatusOK, gin.H{"total_cost": view.TotalCost, "items": len(view.Entries)}, "Order Confirmed")
}

// ownSession loads the session and verifies the path id matches its user;
// an account can only operate on its own resources.
func ownSession(c *gin.Context, pathID string) (*models.Session, bool) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Insufficient authorization"})
		return nil, false
	}
	if pathID != "" && pathID != sess.UserID {
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "Cannot access another account's data"})
		return nil, false
	}
	return sess, true
}
