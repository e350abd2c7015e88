package routes

import (
	"time"

	"agencysite/config"
	"agencysite/handlers"
	"agencysite/middleware"
	"agencysite/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers admin login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.AdminHandler.LoginHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware(hb.Auth))
		protected.GET("/me", hb.AdminHandler.MeHandler)
		protected.POST("/logout", hb.AdminHandler.LogoutHandler)
	}
}

// RegisterPricingRoutes registers the catalog and calculator endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.GET("", hb.PricingHandler.GetPricingHandler)
		api.POST("/estimate", hb.PricingHandler.EstimateHandler)

		api.PUT("",
			middleware.JWTAuthAdminMiddleware(hb.Auth),
			middleware.RequirePermission(models.PermManagePricing),
			hb.PricingHandler.UpdatePricingHandler)
	}
}

// RegisterBookingSettingsRoutes registers calendar configuration endpoints.
func RegisterBookingSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking-settings")
	{
		api.GET("", hb.BookingSettingsHandler.GetPublicSettingsHandler)

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuthAdminMiddleware(hb.Auth), middleware.RequirePermission(models.PermManageBookingSettings))
		admin.GET("", hb.BookingSettingsHandler.GetAdminSettingsHandler)
		admin.POST("", hb.BookingSettingsHandler.SaveSettingsHandler)
		admin.PUT("/:id", hb.BookingSettingsHandler.UpdateSettingsHandler)
		admin.DELETE("/:id", hb.BookingSettingsHandler.DeleteSettingsHandler)
	}
}

// RegisterBookingRoutes registers the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/available-slots", hb.BookingHandler.AvailableSlotsHandler)
		api.GET("/check-availability", hb.BookingHandler.CheckAvailabilityHandler)
		api.POST("", middleware.RateLimitMiddleware(config.AppConfig.BookingRequestsPerMin), hb.BookingHandler.CreateBookingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.Auth))

		bookings := adminGroup.Group("/bookings")
		bookings.Use(middleware.RequirePermission(models.PermManageBookings))
		bookings.GET("", hb.BookingHandler.ListBookingsHandler)
		bookings.GET("/upcoming", hb.BookingHandler.UpcomingBookingsHandler)
		bookings.GET("/stats", hb.BookingHandler.BookingStatsHandler)
		bookings.GET("/:id", hb.BookingHandler.GetBookingHandler)
		bookings.PUT("/:id", hb.BookingHandler.UpdateBookingHandler)
		bookings.DELETE("/:id", hb.BookingHandler.DeleteBookingHandler)

		admins := adminGroup.Group("/admins")
		admins.Use(middleware.RequirePermission(models.PermManageAdmins))
		admins.GET("", hb.AdminHandler.ListAdminsHandler)
		admins.POST("", hb.AdminHandler.CreateAdminHandler)

		adminGroup.GET("/analytics/calculator",
			middleware.RequirePermission(models.PermViewAnalytics),
			hb.PricingHandler.CalculatorStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: !allowsAnyOrigin(),
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterBookingSettingsRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// Browsers refuse credentialed responses to a wildcard origin.
func allowsAnyOrigin() bool {
	for _, o := range config.AllowedOrigins() {
		if o == "*" {
			return true
		}
	}
	return false
}
