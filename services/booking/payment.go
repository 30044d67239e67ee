package booking

import (
	"context"
	"fmt"
	"math"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// PaymentGateway creates card payment intents with an external processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}

const paymentCurrency = "usd"

// AmountInCents converts a price to the smallest currency unit.
func AmountInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, price float64) (*models.PaymentIntent, error) {
	amount := AmountInCents(price)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	secret, err := s.Gateway.CreatePaymentIntent(ctx, amount, paymentCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &models.PaymentIntent{ClientSecret: secret}, nil
}

// RecordPayment marks the referenced booking paid and stores the payment.
// The booking is updated first so that a payment is never stored for an
// unknown booking.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, payment models.Payment) (string, error) {
	bookingID, err := primitive.ObjectIDFromHex(payment.BookingID)
	if err != nil {
		return "", ErrInvalidBookingID
	}

	if err := s.Repo.MarkPaid(ctx, bookingID, payment.TransactionID); err != nil {
		return "", err
	}

	id, err := s.Payments.Create(ctx, &payment)
	if err != nil {
		s.logger().Error("booking marked paid but payment record failed",
			zap.String("bookingId", payment.BookingID),
			zap.String("transactionId", payment.TransactionID),
			zap.Error(err))
		return "", err
	}
	return id.Hex(), nil
}
