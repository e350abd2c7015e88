package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agencysite/models"

	"github.com/hibiken/asynq"
)

const TypeBookingNotify = "booking:notify"

func NewBookingNotifyTask(payload models.BookingNotificationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingNotify, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// ParseBookingNotifyTask decodes the payload of a booking:notify task.
func ParseBookingNotifyTask(task *asynq.Task) (models.BookingNotificationPayload, error) {
	var p models.BookingNotificationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", TypeBookingNotify, err)
	}
	return p, nil
}

// Enqueuer is the subset of *asynq.Client used to queue tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// BookingQueue queues admin notifications for new bookings.
type BookingQueue struct {
	client Enqueuer
}

func NewBookingQueue(client Enqueuer) *BookingQueue {
	return &BookingQueue{client: client}
}

func (q *BookingQueue) EnqueueBookingNotification(ctx context.Context, payload models.BookingNotificationPayload) error {
	task, opts, err := NewBookingNotifyTask(payload)
	if err != nil {
		return err
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", TypeBookingNotify, err)
	}
	return nil
}
