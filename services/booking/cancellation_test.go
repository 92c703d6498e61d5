package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"letsheal/models"
	"letsheal/services/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestCanCancelBoundary(t *testing.T) {
	assert.True(t, CanCancel(now.Add(-4*time.Hour-59*time.Minute), now))
	assert.True(t, CanCancel(now.Add(-5*time.Hour), now))
	assert.False(t, CanCancel(now.Add(-5*time.Hour-time.Minute), now))
}

func TestHoursRemainingNeverNegative(t *testing.T) {
	for _, age := range []time.Duration{0, time.Hour, 5 * time.Hour, 6 * time.Hour, 72 * time.Hour} {
		h := HoursRemaining(now.Add(-age), now)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.LessOrEqual(t, h, 5.0)
	}
	assert.InDelta(t, 2.0, HoursRemaining(now.Add(-3*time.Hour), now), 1e-9)
	assert.Equal(t, 5.0, HoursRemaining(now.Add(time.Hour), now))
}

func TestAnnotate(t *testing.T) {
	appts := []models.Appointment{
		{ID: 1, CreatedAt: now.Add(-90 * time.Minute).Format(time.RFC3339)},
		{ID: 2, CreatedAt: "2025-03-01T05:00:00"},
		{ID: 3},
	}

	views := Annotate(appts, now)
	require.Len(t, views, 3)
	assert.True(t, views[0].CanCancel)
	assert.Equal(t, 3.5, views[0].HoursRemaining)
	assert.False(t, views[1].CanCancel)
	assert.Equal(t, 0.0, views[1].HoursRemaining)
	assert.False(t, views[2].CanCancel)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("guest", func(t *testing.T) {
		api := &MockAPI{}
		err := Cancel(ctx, api, nil, "4", nil, now)
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.Zero(t, api.CancelCallCount)
	})

	t.Run("window closed locally", func(t *testing.T) {
		api := &MockAPI{}
		created := now.Add(-6 * time.Hour)
		err := Cancel(ctx, api, customerSession(), "4", &created, now)
		assert.ErrorIs(t, err, ErrCancellationClosed)
		assert.Zero(t, api.CancelCallCount)
	})

	t.Run("server refusal passes through", func(t *testing.T) {
		api := &MockAPI{CancelFunc: func(context.Context, string, int64) error {
			return &remote.ServerError{Status: 400, Message: "Cancellation window has passed"}
		}}
		created := now.Add(-time.Hour)
		err := Cancel(ctx, api, customerSession(), "4", &created, now)
		var se *remote.ServerError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "Cancellation window has passed", se.Message)
	})

	t.Run("unknown creation time defers to server", func(t *testing.T) {
		var gotID int64
		api := &MockAPI{CancelFunc: func(_ context.Context, token string, id int64) error {
			gotID = id
			assert.Equal(t, "tok", token)
			return nil
		}}
		require.NoError(t, Cancel(ctx, api, customerSession(), "4", nil, now))
		assert.Equal(t, int64(4), gotID)
	})

	t.Run("bad id", func(t *testing.T) {
		var ve *ValidationError
		assert.ErrorAs(t, Cancel(ctx, &MockAPI{}, customerSession(), "abc", nil, now), &ve)
	})
}
