package routes

import (
	"time"

	"letsheal/handlers"
	"letsheal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, logout and session endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", hb.Auth.Login)
		auth.POST("/logout", hb.Auth.Logout)
		auth.POST("/refresh", middleware.RequireSession(), hb.Auth.Refresh)
	}
	api.GET("/session", hb.Auth.Session)
}

// RegisterBookingRoutes registers the therapist directory and the booking form
// endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/therapists", hb.Therapists.List)
	therapists := api.Group("/therapists/:id")
	{
		therapists.GET("/booking-options", hb.Booking.Options)
		therapists.POST("/appointments",
			middleware.RequirePermission(middleware.CanBook, "You don't have permission to book appointments. Only customers can book."),
			hb.Booking.Submit)
	}
}

// RegisterAppointmentRoutes registers appointment history and cancellation.
func RegisterAppointmentRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	appts := api.Group("/appointments")
	{
		appts.GET("", middleware.RequirePermission(middleware.CanViewAppts, "Appointments are not available for this account."), hb.Appointments.List)
		appts.DELETE("/:id", middleware.RequirePermission(middleware.CanCancel, "Only customers can cancel their appointments."), hb.Appointments.Cancel)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	admin := api.Group("/admin")
	{
		admin.Use(middleware.RequirePermission(middleware.CanManageUsers, "Admin access required."))
		admin.GET("/customers", hb.Admin.ListCustomers)
		admin.GET("/customers/:id", hb.Admin.GetCustomer)
		admin.DELETE("/customers/:id", hb.Admin.DeleteCustomer)

		admin.GET("/therapists", hb.Admin.ListTherapists)
		admin.GET("/therapists/:id", hb.Admin.GetTherapist)
		admin.DELETE("/therapists/:id", hb.Admin.DeleteTherapist)

		admin.GET("/hospitals", hb.Admin.ListHospitals)
		admin.POST("/hospitals", hb.Admin.CreateHospital)
		admin.GET("/hospitals/:id", hb.Admin.GetHospital)
		admin.PUT("/hospitals/:id", hb.Admin.UpdateHospital)
		admin.DELETE("/hospitals/:id", hb.Admin.DeleteHospital)

		admin.GET("/therapist-requests", hb.Admin.ListTherapistRequests)
		admin.GET("/therapist-requests/:id", hb.Admin.GetTherapistRequest)
		admin.POST("/therapist-requests/:id/process", hb.Admin.ProcessTherapistRequest)
	}
}

// RegisterBlogRoutes registers blog reading and editing.
func RegisterBlogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	blogs := api.Group("/blogs")
	{
		blogs.GET("", hb.Blog.List)
		blogs.GET("/:id", hb.Blog.Detail)

		manage := blogs.Group("")
		manage.Use(middleware.RequirePermission(middleware.CanManageBlog, "Only therapists and admins can manage posts."))
		manage.GET("/mine", hb.Blog.Mine)
		manage.POST("", hb.Blog.Create)
		manage.PUT("/:id", hb.Blog.Update)
		manage.DELETE("/:id", hb.Blog.Delete)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	api := r.Group("/api")
	api.Use(
		middleware.RateLimitMiddleware(hb.MaxRequestsPerMin),
		middleware.SessionMiddleware(hb.Sessions, hb.Handles, hb.Cookie.Name),
	)
	RegisterAuthRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterAppointmentRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
	RegisterBlogRoutes(api, hb)
}
