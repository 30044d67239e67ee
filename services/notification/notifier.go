package notification

import (
	"context"

	"doctorsportal/models"

	"go.uber.org/zap"
)

// Notifier delivers booking confirmations to patients.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error
}

// LogNotifier records confirmations in the application log. It stands in for
// an e-mail provider, which is configured outside this service.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) SendBookingConfirmation(ctx context.Context, p models.BookingConfirmationPayload) error {
	n.Logger.Info("booking confirmed",
		zap.String("bookingId", p.BookingID),
		zap.String("email", p.Email),
		zap.String("treatment", p.Treatment),
		zap.String("appointmentDate", p.AppointmentDate),
		zap.String("slot", p.Slot),
	)
	return nil
}
