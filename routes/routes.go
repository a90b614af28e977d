// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sailshare-api/config"
	"sailshare-api/controllers"
	"sailshare-api/middleware"
	"sailshare-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config,
	emailService *services.EmailService,
	uploadService *services.UploadService,
	geocodeService *services.GeocodeService) {

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	socialAuthController := controllers.NewSocialAuthController(db, cfg.JWTSecret, uploadService)
	userController := controllers.NewUserController(db, uploadService)
	validationController := controllers.NewValidationController(db, uploadService)
	boatController := controllers.NewBoatController(db)
	bookingController := controllers.NewBookingController(db, emailService)
	reviewController := controllers.NewReviewController(db)
	favoriteController := controllers.NewFavoriteController(db)
	messageController := controllers.NewMessageController(db, emailService)
	geocodeController := controllers.NewGeocodeController(geocodeService)
	adminController := controllers.NewAdminController(db)

	authRequired := middleware.AuthMiddleware(cfg.JWTSecret)
	authOptional := middleware.OptionalAuthMiddleware(cfg.JWTSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "healthy",
		})
	})

	api := r.Group("/api")

	// Users: registration, login, verification, profile
	users := api.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
		users.POST("/logout", authController.Logout)
		users.GET("/verify-email", authController.VerifyEmail)
		users.POST("/resend-verification", authController.ResendVerification)

		users.GET("/me", authRequired, userController.GetProfile)
		users.PUT("/me", authRequired, userController.UpdateProfile)
		users.POST("/me/avatar", authRequired, userController.UploadAvatar)

		users.GET("/:id", userController.GetUserByID)
	}

	// OAuth token exchange
	auth := api.Group("/auth")
	{
		auth.POST("/google", socialAuthController.GoogleLogin)
		auth.POST("/facebook", socialAuthController.FacebookLogin)
	}

	// Boating license submission
	api.POST("/validation/license", authRequired, validationController.UploadLicense)

	// Boats: public surface + owner management
	boats := api.Group("/boats")
	{
		boats.GET("", boatController.ListPublicBoats)
		boats.GET("/near", boatController.GetBoatsNear)
		boats.GET("/:id", boatController.GetBoatPublic)

		boats.GET("/mine", authRequired, boatController.GetMyBoats)
		boats.POST("", authRequired, boatController.CreateBoat)
		boats.PUT("/:id", authRequired, boatController.UpdateBoat)
		boats.DELETE("/:id", authRequired, boatController.DeleteBoat)
		boats.PATCH("/:id/status", authRequired, boatController.ToggleActive)
		boats.POST("/:id/submit", authRequired, boatController.Submit)
	}

	// Bookings; creation and payment accept anonymous callers
	bookings := api.Group("/bookings")
	{
		bookings.POST("", authOptional, bookingController.CreateBooking)
		bookings.GET("/availability/:boatId", bookingController.GetAvailability)
		bookings.GET("/mine", authRequired, bookingController.GetMyBookings)
		bookings.GET("/owner", authRequired, bookingController.GetOwnerBookings)
		bookings.PUT("/:id/status", authRequired, bookingController.UpdateStatus)
		bookings.POST("/:id/simulate-payment", authOptional, bookingController.SimulatePayment)
	}

	// Reviews
	reviews := api.Group("/reviews")
	{
		reviews.POST("", authRequired, reviewController.CreateReview)
		reviews.GET("/mine", authRequired, reviewController.GetMyReviews)
		reviews.GET("/boat/:boatId", reviewController.GetBoatReviews)
	}

	// Favorites
	favorites := api.Group("/favorites")
	favorites.Use(authRequired)
	{
		favorites.GET("", favoriteController.GetFavorites)
		favorites.POST("/:boatId/toggle", favoriteController.ToggleFavorite)
	}

	// Owner contact messages
	api.POST("/messages/contact-owner", authOptional, messageController.ContactOwner)

	// Geocoding proxy
	geocode := api.Group("/geocode")
	{
		geocode.GET("/autocomplete", geocodeController.Autocomplete)
		geocode.GET("/reverse", geocodeController.Reverse)
	}

	// Admin queues
	admin := api.Group("/admin")
	admin.Use(authRequired, middleware.AdminRequired(db))
	{
		admin.GET("/license-requests", adminController.GetLicenseQueue)
		admin.POST("/license-requests/:id/approve", adminController.ApproveLicense)
		admin.POST("/license-requests/:id/reject", adminController.RejectLicense)

		admin.GET("/boats", adminController.GetPendingBoats)
		admin.POST("/boats/:id/approve", adminController.ApproveBoat)
		admin.POST("/boats/:id/reject", adminController.RejectBoat)
	}
}
