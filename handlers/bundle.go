package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Auth endpoints.
	LoginHandler    gin.HandlerFunc
	RegisterHandler gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc

	// Cart endpoints.
	GetCartHandler        gin.HandlerFunc
	AddToCartHandler      gin.HandlerFunc
	RemoveFromCartHandler gin.HandlerFunc
	CheckoutHandler       gin.HandlerFunc
	ConfirmPaymentHandler gin.HandlerFunc

	// Vendor directory endpoints.
	VendorsByTypeHandler gin.HandlerFunc
	VendorDetailsHandler gin.HandlerFunc

	// Request endpoints.
	CreateRequestHandler gin.HandlerFunc
	RequestStatusHandler gin.HandlerFunc
	UpdateRequestHandler gin.HandlerFunc

	// Dashboard endpoints.
	CoupleDashboardHandler gin.HandlerFunc
	CoupleRequestsHandler  gin.HandlerFunc
	VendorDashboardHandler gin.HandlerFunc
	VendorRequestsHandler  gin.HandlerFunc

	// Profile endpoints.
	UpdateCoupleProfileHandler gin.HandlerFunc
	UpdateVendorProfileHandler gin.HandlerFunc
	VendorProfileHandler       gin.HandlerFunc
}
