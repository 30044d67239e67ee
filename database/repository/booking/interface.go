package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrDuplicateBooking is returned when the patient already holds a booking
	// for the same treatment on the same date.
	ErrDuplicateBooking = errors.New("booking already exists for patient, treatment and date")
	// ErrBookingNotFound is returned when no booking matches the given id.
	ErrBookingNotFound = errors.New("booking not found")
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a booking and returns its id. A unique-index violation is
	// reported as ErrDuplicateBooking.
	Create(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error)
	// Exists reports whether a booking with the same date, email and treatment exists.
	Exists(ctx context.Context, appointmentDate, email, treatment string) (bool, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	GetByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// MarkPaid sets paid=true and the transaction id on the booking.
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error
	EnsureIndexes(ctx context.Context) error
}
