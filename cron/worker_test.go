package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"doctorsportal/models"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	sent []models.BookingConfirmationPayload
	err  error
}

func (r *recordingNotifier) SendBookingConfirmation(ctx context.Context, p models.BookingConfirmationPayload) error {
	r.sent = append(r.sent, p)
	return r.err
}

func TestHandleBookingConfirmation(t *testing.T) {
	notifier := &recordingNotifier{}
	handler := HandleBookingConfirmation(notifier, zap.NewNop())
	body, err := json.Marshal(models.BookingConfirmationPayload{BookingID: "b1", Email: "ann@x.io"})
	require.NoError(t, err)

	require.NoError(t, handler(context.Background(), asynq.NewTask(tasks.TypeBookingConfirmation, body)))
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "b1", notifier.sent[0].BookingID)
}

func TestHandleBookingConfirmationSkipsRetryOnBadPayload(t *testing.T) {
	handler := HandleBookingConfirmation(&recordingNotifier{}, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingConfirmation, []byte("nope")))

	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleBookingConfirmationRetriesNotifierFailure(t *testing.T) {
	boom := errors.New("smtp unavailable")
	handler := HandleBookingConfirmation(&recordingNotifier{err: boom}, zap.NewNop())
	body, _ := json.Marshal(models.BookingConfirmationPayload{BookingID: "b1"})

	err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingConfirmation, body))

	assert.ErrorIs(t, err, boom)
}
