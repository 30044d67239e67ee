package cron

import (
	"context"
	"time"

	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitConfirmationWorker runs the asynq worker in the background and returns
// a function that stops it.
func InitConfirmationWorker(redisOpts asynq.RedisClientOpt, notifier notification.Notifier, logger *zap.Logger) func() {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, HandleBookingConfirmation(notifier, logger))

	go func() {
		logger.Info("starting booking confirmation worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("confirmation worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("confirmation worker gave up")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv.Shutdown
}

// HandleBookingConfirmation decodes the task and hands it to notifier.
func HandleBookingConfirmation(notifier notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseBookingConfirmation(task)
		if err != nil {
			logger.Error("dropping booking confirmation", zap.Error(err))
			return asynq.SkipRetry
		}
		if err := notifier.SendBookingConfirmation(ctx, p); err != nil {
			logger.Warn("booking confirmation failed", zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
