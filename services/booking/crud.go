package booking

import (
	"context"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetBooking returns the booking with the given hex id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidBookingID
	}
	return s.Repo.GetByID(ctx, objID)
}

// GetPatientBookings lists every booking made with email.
func (s *DefaultBookingService) GetPatientBookings(ctx context.Context, email string) ([]models.Booking, error) {
	return s.Repo.GetByEmail(ctx, email)
}
