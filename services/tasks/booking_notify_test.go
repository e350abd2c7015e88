package tasks

import (
	"context"
	"testing"

	"agencysite/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "t1", Type: task.Type()}, nil
}

func TestBookingQueueRoundTrip(t *testing.T) {
	f := &fakeEnqueuer{}
	q := NewBookingQueue(f)
	in := models.BookingNotificationPayload{BookingID: "b-1", Name: "Priya", PreferredDate: "2026-10-15"}

	require.NoError(t, q.EnqueueBookingNotification(context.Background(), in))
	require.Len(t, f.tasks, 1)
	assert.Equal(t, TypeBookingNotify, f.tasks[0].Type())

	out, err := ParseBookingNotifyTask(f.tasks[0])
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseBookingNotifyTaskRejectsGarbage(t *testing.T) {
	_, err := ParseBookingNotifyTask(asynq.NewTask(TypeBookingNotify, []byte("{")))
	assert.Error(t, err)
}
