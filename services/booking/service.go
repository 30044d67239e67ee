package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"go.uber.org/zap"
)

// duplicateMessage is the rejection text shown to patients.
func duplicateMessage(appointmentDate string) string {
	return fmt.Sprintf("You already have a booking on %s", appointmentDate)
}

// Admit applies the duplicate-booking rule and persists the booking when it holds.
// A patient may hold one booking per treatment per day; the slot is not part of
// the rule. The unique index on the booking store turns a concurrent duplicate
// into the same rejection.
func (s *DefaultBookingService) Admit(ctx context.Context, booking models.Booking) (*models.AdmissionResult, error) {
	log := s.logger().With(
		zap.String("treatment", booking.Treatment),
		zap.String("email", booking.Email),
		zap.String("appointmentDate", booking.AppointmentDate),
	)

	exists, err := s.Repo.Exists(ctx, booking.AppointmentDate, booking.Email, booking.Treatment)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Info("booking rejected as duplicate")
		return rejected(booking.AppointmentDate), nil
	}

	booking.Paid = false
	booking.TransactionID = ""
	id, err := s.Repo.Create(ctx, &booking)
	if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
		log.Info("booking rejected by unique index")
		return rejected(booking.AppointmentDate), nil
	}
	if err != nil {
		return nil, err
	}

	s.afterAdmission(ctx, booking, log)

	return &models.AdmissionResult{Admitted: true, InsertedID: id.Hex()}, nil
}

func rejected(appointmentDate string) *models.AdmissionResult {
	return &models.AdmissionResult{Admitted: false, Message: duplicateMessage(appointmentDate)}
}

// afterAdmission runs the side effects of an accepted booking. They are best effort.
func (s *DefaultBookingService) afterAdmission(ctx context.Context, booking models.Booking, log *zap.Logger) {
	if s.Availability != nil {
		if err := s.Availability.Invalidate(ctx, booking.AppointmentDate); err != nil {
			log.Warn("failed to invalidate cached availability", zap.Error(err))
		}
	}
	if s.Tasks != nil {
		payload := models.BookingConfirmationPayload{
			BookingID:       booking.ID.Hex(),
			Email:           booking.Email,
			Patient:         booking.Patient,
			Treatment:       booking.Treatment,
			AppointmentDate: booking.AppointmentDate,
			Slot:            booking.Slot,
			Price:           booking.Price,
		}
		if err := s.Tasks.EnqueueBookingConfirmation(ctx, payload); err != nil {
			log.Warn("failed to enqueue booking confirmation", zap.Error(err))
		}
	}
}
