package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"agencysite/models"
	"agencysite/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	got []models.BookingNotificationPayload
	err error
}

func (s *stubNotifier) NotifyNewBooking(ctx context.Context, p models.BookingNotificationPayload) error {
	s.got = append(s.got, p)
	return s.err
}

func TestHandleBookingNotifyTask(t *testing.T) {
	p := models.BookingNotificationPayload{BookingID: "b-1", Name: "Priya"}
	raw, err := json.Marshal(p)
	require.NoError(t, err)

	t.Run("delivers payload", func(t *testing.T) {
		n := &stubNotifier{}
		err := HandleBookingNotifyTask(n)(context.Background(), asynq.NewTask(tasks.TypeBookingNotify, raw))
		require.NoError(t, err)
		require.Len(t, n.got, 1)
		assert.Equal(t, "b-1", n.got[0].BookingID)
	})

	t.Run("send failure is retried", func(t *testing.T) {
		n := &stubNotifier{err: errors.New("smtp down")}
		err := HandleBookingNotifyTask(n)(context.Background(), asynq.NewTask(tasks.TypeBookingNotify, raw))
		assert.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("bad payload skips retry", func(t *testing.T) {
		n := &stubNotifier{}
		err := HandleBookingNotifyTask(n)(context.Background(), asynq.NewTask(tasks.TypeBookingNotify, []byte("nope")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
		assert.Empty(t, n.got)
	})
}
