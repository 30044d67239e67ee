package routes

import (
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the public availability endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.Appointments.GetAppointmentOptions)
	r.GET("/v2/appointmentOptions", hb.Appointments.GetAppointmentOptionsV2)
	r.GET("/appointmentSpecialty", hb.Appointments.GetSpecialties)
}

// RegisterBookingRoutes registers booking and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("", middleware.JWTAuthMiddleware(hb.Tokens), hb.Bookings.GetBookings)
		bookings.GET("/:id", hb.Bookings.GetBookingByID)
		bookings.POST("", hb.Bookings.PostBooking)
	}

	r.POST("/create-payment-intent", hb.Payments.CreatePaymentIntent)
	r.POST("/payments", hb.Payments.PostPayment)
}

// RegisterUserRoutes registers token issuance and user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.Users.GetJWT)

	users := r.Group("/users")
	{
		users.GET("", hb.Users.GetUsers)
		users.POST("", hb.Users.PostUser)
		users.GET("/admin/:email", hb.Users.GetUserAdmin)
		users.PUT("/admin/:id",
			middleware.JWTAuthMiddleware(hb.Tokens),
			middleware.AdminMiddleware(hb.Admins),
			hb.Users.PutUserAdmin)
	}
}

// RegisterDoctorRoutes registers the admin-only doctor roster.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctors")
	{
		doctors.Use(middleware.JWTAuthMiddleware(hb.Tokens), middleware.AdminMiddleware(hb.Admins))
		doctors.POST("", hb.Doctors.PostDoctor)
		doctors.GET("", hb.Doctors.GetDoctors)
		doctors.DELETE("/:id", hb.Doctors.DeleteDoctor)
	}
}

// RegisterHealthRoute registers the banner and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Health.Banner)
	r.GET("/health", hb.Health.GetHealth)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
