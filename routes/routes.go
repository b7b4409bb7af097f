package routes

import (
	"net/http"
	"time"

	"yalasafari/handlers"
	"yalasafari/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the safari booking engine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.Create)
		api.POST("/calculate-price", hb.Booking.CalculatePrice)
		api.GET("/availability", hb.Booking.CheckAvailability)
		api.GET("/availability/dates", hb.Booking.BookedDates)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("", hb.Booking.List)
		protected.GET("/:id", hb.Booking.Get)
		protected.PUT("/:id", hb.Booking.UpdateContact)
		protected.PATCH("/:id/approve", hb.Booking.Approve)
		protected.PATCH("/:id/reject", hb.Booking.Reject)
		protected.PATCH("/:id/complete", hb.Booking.Complete)
		protected.PATCH("/:id/payment", hb.Booking.SetPaymentStatus)
		protected.DELETE("/:id", hb.Booking.Delete)
	}
}

// RegisterPackageRoutes sets up pricing package endpoints.
func RegisterPackageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/packages")
	{
		api.GET("/active", hb.Package.GetActive)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("", hb.Package.List)
		protected.GET("/:id", hb.Package.Get)
		protected.POST("", hb.Package.Create)
		protected.PUT("/:id", hb.Package.Update)
	}
}

// RegisterRoomRoutes sets up the room catalogue and room bookings.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.Room.List)
		api.GET("/:id", hb.Room.Get)
		api.POST("/book", hb.Room.Book)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Room.Create)
		protected.PUT("/:id", hb.Room.Update)
		protected.DELETE("/:id", hb.Room.Delete)
		protected.GET("/bookings", hb.Room.ListBookings)
		protected.GET("/bookings/:id", hb.Room.GetBooking)
		protected.PATCH("/bookings/:id/status", hb.Room.SetBookingStatus)
		protected.DELETE("/bookings/:id", hb.Room.DeleteBooking)
	}
}

// RegisterTaxiRoutes sets up the transfer fleet and taxi bookings.
func RegisterTaxiRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/taxis")
	{
		api.GET("", hb.Taxi.List)
		api.GET("/:id", hb.Taxi.Get)
		api.GET("/:id/fare", hb.Taxi.EstimateFare)
		api.POST("/book", hb.Taxi.Book)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Taxi.Create)
		protected.PUT("/:id", hb.Taxi.Update)
		protected.DELETE("/:id", hb.Taxi.Delete)
		protected.GET("/bookings", hb.Taxi.ListBookings)
		protected.GET("/bookings/:id", hb.Taxi.GetBooking)
		protected.PATCH("/bookings/:id/status", hb.Taxi.SetBookingStatus)
		protected.DELETE("/bookings/:id", hb.Taxi.DeleteBooking)
	}
}

// RegisterReviewRoutes sets up testimonial submission and moderation.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", hb.Review.Submit)
		api.GET("", hb.Review.ListPublished)
		api.POST("/:id/helpful", hb.Review.MarkHelpful)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("/all", hb.Review.ListAll)
		protected.PATCH("/:id", hb.Review.Moderate)
		protected.DELETE("/:id", hb.Review.Delete)
	}
}

// RegisterGalleryRoutes sets up gallery browsing and admin uploads.
func RegisterGalleryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/gallery")
	{
		api.GET("", hb.Gallery.List)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Gallery.Upload)
		protected.PUT("/:id", hb.Gallery.Update)
		protected.DELETE("/:id", hb.Gallery.Delete)
	}
}

// RegisterBlogRoutes sets up article browsing and authoring.
func RegisterBlogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/blogs")
	{
		api.GET("", hb.Blog.List)
		api.GET("/:slug", hb.Blog.GetBySlug)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Blog.Create)
		protected.PUT("/id/:id", hb.Blog.Update)
		protected.DELETE("/id/:id", hb.Blog.Delete)
	}
}

// RegisterContactRoutes sets up the contact form and the admin inbox.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contact")
	{
		api.POST("", hb.Contact.Submit)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.GET("", hb.Contact.List)
		protected.PATCH("/:id/read", hb.Contact.MarkRead)
		protected.DELETE("/:id", hb.Contact.Delete)
	}
}

// RegisterAdminRoutes sets up back-office authentication and the
// dashboard overview.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.Login)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("/logout", hb.Admin.Logout)
		protected.GET("/dashboard", hb.Dashboard.Overview)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Yala Safari API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterPackageRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterTaxiRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterGalleryRoutes(r, hb)
	RegisterBlogRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
