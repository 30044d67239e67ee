package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "booking:confirmation"

// Enqueuer schedules background work that follows a booking.
type Enqueuer interface {
	EnqueueBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error
}

// NewBookingConfirmationTask builds the task for payload. The task id is derived
// from the booking id so a booking is confirmed at most once.
func NewBookingConfirmationTask(payload models.BookingConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	if payload.BookingID == "" {
		return nil, nil, errors.New("booking id is required")
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{
		asynq.TaskID(TypeBookingConfirmation + ":" + payload.BookingID),
		asynq.MaxRetry(5),
	}
	return task, opts, nil
}

// ParseBookingConfirmation decodes the payload of a confirmation task.
func ParseBookingConfirmation(task *asynq.Task) (models.BookingConfirmationPayload, error) {
	var p models.BookingConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid booking confirmation payload: %w", err)
	}
	return p, nil
}

// AsynqEnqueuer enqueues tasks through an asynq client.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

func NewAsynqEnqueuer(opt asynq.RedisConnOpt) *AsynqEnqueuer {
	return &AsynqEnqueuer{Client: asynq.NewClient(opt)}
}

func (e *AsynqEnqueuer) EnqueueBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error {
	task, opts, err := NewBookingConfirmationTask(payload)
	if err != nil {
		return err
	}
	if _, err := e.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue %s: %w", TypeBookingConfirmation, err)
	}
	return nil
}

func (e *AsynqEnqueuer) Close() error {
	return e.Client.Close()
}
