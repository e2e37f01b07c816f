package routes

import (
	"curaone-backend/internal/handlers"
	"curaone-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.RateLimitMiddleware())

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		// Public: browsing needs no account.
		api.GET("/hospitals", handlers.GetHospitals)
		api.GET("/doctors", handlers.GetDoctors)
		api.GET("/lab/tests", handlers.SearchLabTests)
		api.GET("/locations/hospitals", handlers.NearbyHospitals)
		api.GET("/locations/labs", handlers.NearbyLabs)
		api.GET("/locations/places", handlers.NearbyPlaces)
		api.GET("/locations/directions", handlers.GetDirections)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", handlers.GetUserProfile)

			protected.POST("/appointments", handlers.BookAppointment)
			protected.GET("/appointments", handlers.GetAppointments)
			protected.PUT("/appointments/:id/reschedule", handlers.RescheduleAppointment)
			protected.GET("/appointments/:id/session", handlers.GetSessionLink)

			protected.POST("/lab/cart", handlers.AddToCart)
			protected.GET("/lab/cart", handlers.GetCart)
			protected.DELETE("/lab/cart/:id", handlers.RemoveFromCart)
			protected.POST("/lab/referral", handlers.ApplyReferral)
			protected.POST("/lab/checkout", handlers.Checkout)
		}
	}
}
