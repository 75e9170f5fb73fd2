package routes

import (
	"net/http"
	"time"

	"wednest/handlers"
	"wednest/middleware"
	"wednest/models"
	"wednest/services/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login/register/logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Service) {
	api := r.Group("/api")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		api.POST("/logout", middleware.SessionAuthMiddleware(sessions), hb.LogoutHandler)
	}
}

// RegisterVendorDirectoryRoutes registers the public vendor listings. The
// category screens and vendor detail pages render before login.
func RegisterVendorDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/vendors/type/:type", hb.VendorsByTypeHandler)
		api.GET("/vendor/details/:vendorId", hb.VendorDetailsHandler)
	}
}

// RegisterCoupleRoutes registers the couple-facing endpoints: aggregated
// cart, checkout, requests, dashboard, profile.
func RegisterCoupleRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Service) {
	api := r.Group("/api")
	api.Use(middleware.SessionAuthMiddleware(sessions))
	api.Use(middleware.RequireRole(models.RoleCouple))
	{
		api.GET("/cart/:coupleId", hb.GetCartHandler)
		api.POST("/cart/add", hb.AddToCartHandler)
		api.DELETE("/cart/remove", hb.RemoveFromCartHandler)
		api.GET("/checkout/:coupleId", hb.CheckoutHandler)
		api.POST("/checkout/:coupleId/pay", hb.ConfirmPaymentHandler)

		api.POST("/request", hb.CreateRequestHandler)

		api.GET("/couple/dashboard/:id", hb.CoupleDashboardHandler)
		api.GET("/couple/requests/:id", hb.CoupleRequestsHandler)
		api.PUT("/couple/profile", hb.UpdateCoupleProfileHandler)
	}
}

// RegisterVendorRoutes registers the vendor-facing endpoints: bookings,
// dashboard, profile, request actions.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Service) {
	api := r.Group("/api")
	api.Use(middleware.SessionAuthMiddleware(sessions))
	api.Use(middleware.RequireRole(models.RoleVendor))
	{
		api.PUT("/request/:id", hb.UpdateRequestHandler)

		api.GET("/vendor/dashboard/:id", hb.VendorDashboardHandler)
		api.GET("/vendor/requests/:id", hb.VendorRequestsHandler)
		api.GET("/vendor/profile/:id", hb.VendorProfileHandler)
		api.PUT("/vendor/profile", hb.UpdateVendorProfileHandler)
	}
}

// RegisterSharedRoutes registers authenticated endpoints both roles use.
func RegisterSharedRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Service) {
	api := r.Group("/api")
	api.Use(middleware.SessionAuthMiddleware(sessions))
	{
		api.GET("/request/status/:id", hb.RequestStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm WedNest"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, sessions session.Service) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb, sessions)
	RegisterVendorDirectoryRoutes(r, hb)
	RegisterCoupleRoutes(r, hb, sessions)
	RegisterVendorRoutes(r, hb, sessions)
	RegisterSharedRoutes(r, hb, sessions)
	RegisterHealthRoute(r)
}
