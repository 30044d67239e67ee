// File: doctorsportal/handlers/bundle.go
package handlers

import (
	"doctorsportal/middleware"
)

// HandlerBundle groups all endpoint handlers and what the route guards need.
type HandlerBundle struct {
	Tokens middleware.TokenValidator
	Admins middleware.AdminChecker

	Appointments *AppointmentHandler
	Bookings     *BookingHandler
	Payments     *PaymentHandler
	Users        *UserHandler
	Doctors      *DoctorHandler
	Health       *HealthHandler
}
