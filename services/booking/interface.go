package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"
	"doctorsportal/services/availability"
	"doctorsportal/services/tasks"

	"go.uber.org/zap"
)

// BookingService covers admission, lookup and payment of bookings.
type BookingService interface {
	Admit(ctx context.Context, booking models.Booking) (*models.AdmissionResult, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetPatientBookings(ctx context.Context, email string) ([]models.Booking, error)
	CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntent, error)
	RecordPayment(ctx context.Context, payment models.Payment) (string, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Payments     paymentRepo.PaymentRepository
	Gateway      PaymentGateway
	Availability availability.Invalidator
	Tasks        tasks.Enqueuer
	Logger       *zap.Logger
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
