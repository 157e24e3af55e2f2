package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vikramKumar-01/Hotel-mangement/internal/container"
	"github.com/vikramKumar-01/Hotel-mangement/internal/handlers"
	"github.com/vikramKumar-01/Hotel-mangement/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	secure := c.Config.IsProduction()

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	auth := middleware.Auth(c.Tokens, c.UserService)
	admin := middleware.RequireAdmin()

	// Uploaded profile images are served straight from disk.
	r.Static("/uploads", c.Config.UploadDir)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"status":  "OK",
			"service": "venuebook-api",
		})
	})

	userRoutes := r.Group("/user")
	{
		userRoutes.POST("/signup", handlers.Signup(c.UserService))
		userRoutes.POST("/login", handlers.Login(c.UserService, c.Tokens, secure))
		userRoutes.POST("/logout", auth, handlers.Logout(secure))
		userRoutes.GET("/profile", auth, handlers.GetProfile())
		userRoutes.PUT("/profile/update", auth, handlers.UpdateProfile(c.UserService, c.Config))
	}

	adminRoutes := r.Group("/admin")
	{
		adminRoutes.POST("/login", handlers.AdminLogin(c.UserService, c.Tokens, secure))
		adminRoutes.POST("/logout", auth, admin, handlers.Logout(secure))
		adminRoutes.GET("/profile", auth, admin, handlers.GetProfile())
		adminRoutes.PUT("/profile/update", auth, admin, handlers.UpdateProfile(c.UserService, c.Config))
	}

	venueRoutes := r.Group("/venues")
	{
		venueRoutes.GET("/all", handlers.ListVenues(c.VenueService))
		venueRoutes.GET("/filter", handlers.FilterVenues(c.VenueService))
		venueRoutes.GET("/one/:id", handlers.GetVenue(c.VenueService))
		venueRoutes.POST("/add", auth, admin, handlers.CreateVenue(c.VenueService))
		venueRoutes.PUT("/update/:id", auth, admin, handlers.UpdateVenue(c.VenueService))
		venueRoutes.DELETE("/delete/:id", auth, admin, handlers.DeleteVenue(c.VenueService))
	}

	bookingRoutes := r.Group("/booking")
	bookingRoutes.Use(auth)
	{
		bookingRoutes.POST("/book", handlers.CreateBooking(c.BookingService))
		bookingRoutes.GET("/my-bookings", handlers.MyBookings(c.BookingService))
		bookingRoutes.GET("/allbooking", admin, handlers.AllBookings(c.BookingService))
		bookingRoutes.PUT("/:id/status", admin, handlers.UpdateBookingStatus(c.BookingService))
		bookingRoutes.DELETE("/:id/cancel", handlers.CancelBooking(c.BookingService))
	}

	return r
}
