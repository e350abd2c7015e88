package cron

import (
	"context"
	"time"

	"agencysite/config"
	"agencysite/services/notification"
	"agencysite/services/tasks"
	"agencysite/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection for the notification queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NotificationWorker processes booking:notify tasks in the background.
type NotificationWorker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewNotificationWorker(notifSvc notification.NotificationService) *NotificationWorker {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: newAsynqLogger(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotify, HandleBookingNotifyTask(notifSvc))

	return &NotificationWorker{srv: srv, mux: mux}
}

// Start runs the worker, retrying a few times if Redis is not reachable yet.
func (w *NotificationWorker) Start() {
	logger := utils.GetLogger()
	go func() {
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				logger.Info("notification worker started")
				return
			}
			logger.Warn("notification worker failed to start",
				zap.Int("attempt", attempts), zap.Error(err))
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
		logger.Error("notification worker disabled after repeated start failures")
	}()
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *NotificationWorker) Shutdown() {
	w.srv.Shutdown()
}

func HandleBookingNotifyTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseBookingNotifyTask(task)
		if err != nil {
			utils.GetLogger().Error("dropping booking notification", zap.Error(err))
			// A malformed payload will never succeed.
			return asynq.SkipRetry
		}
		if err := notifSvc.NotifyNewBooking(ctx, p); err != nil {
			utils.GetLogger().Warn("booking notification failed",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

// asynqLogger routes asynq's internal logging through zap.
type asynqLogger struct {
	s *zap.SugaredLogger
}

func newAsynqLogger() *asynqLogger {
	return &asynqLogger{s: utils.GetLogger().Sugar().Named("asynq")}
}

func (l *asynqLogger) Debug(args ...interface{}) { l.s.Debug(args...) }
func (l *asynqLogger) Info(args ...interface{})  { l.s.Info(args...) }
func (l *asynqLogger) Warn(args ...interface{})  { l.s.Warn(args...) }
func (l *asynqLogger) Error(args ...interface{}) { l.s.Error(args...) }
func (l *asynqLogger) Fatal(args ...interface{}) { l.s.Fatal(args...) }
