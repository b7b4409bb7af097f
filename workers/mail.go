package workers

import (
	"context"
	"encoding/json"
	"time"

	"yalasafari/config"
	"yalasafari/services/notification"
	"yalasafari/services/tasks"
	"yalasafari/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitMailWorker starts the background asynq worker that delivers queued
// notification emails. Delivery failures are logged and the task is
// retried by asynq; the booking that triggered the email is never
// affected.
func InitMailWorker(mailer notification.Notifier) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueue,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: config.AppConfig.MailConcurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendEmail, handleEmailTask(mailer))

	go func() {
		logger := utils.GetLogger()
		logger.Info("mail worker: starting async worker")

		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("mail worker: failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("mail worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(mailer notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("mail worker: invalid payload", zap.Error(err))
			return err
		}

		var err error
		switch p.Kind {
		case tasks.KindSafariReceived:
			err = mailer.SafariBookingReceived(ctx, p.SafariBooking)
		case tasks.KindSafariConfirmed:
			err = mailer.SafariBookingConfirmed(ctx, p.SafariBooking)
		case tasks.KindSafariRejected:
			err = mailer.SafariBookingRejected(ctx, p.SafariBooking, p.Reason)
		case tasks.KindRoomReceived:
			err = mailer.RoomBookingReceived(ctx, p.RoomBooking, p.Room)
		case tasks.KindTaxiReceived:
			err = mailer.TaxiBookingReceived(ctx, p.TaxiBooking, p.Taxi)
		case tasks.KindContactReceived:
			err = mailer.ContactReceived(ctx, p.Contact)
		default:
			logger.Warn("mail worker: unknown email kind", zap.String("kind", p.Kind))
			return nil
		}

		if err != nil {
			logger.Error("mail worker: failed to send email",
				zap.String("kind", p.Kind), zap.Error(err))
		}
		return err
	}
}
