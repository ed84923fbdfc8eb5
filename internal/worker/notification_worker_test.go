package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorverse/mentorverse-api/internal/events"
)

func TestNotificationWorker_DeliversAndDrains(t *testing.T) {
	w := NewNotificationWorker(events.NewInMemoryDispatcher(), nil, 16)

	var delivered atomic.Int32
	w.Subscribe(events.EventCourseEnrolled, func(context.Context, events.Event) error {
		delivered.Add(1)
		return nil
	})
	w.Start(2)

	for i := 0; i < 10; i++ {
		require.NoError(t, w.Publish(context.Background(), events.Event{Type: events.EventCourseEnrolled}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Stop(ctx))
	assert.Equal(t, int32(10), delivered.Load())

	assert.ErrorIs(t, w.Publish(context.Background(), events.Event{Type: events.EventCourseEnrolled}), ErrStopped)
	assert.NoError(t, w.Stop(ctx))
}

func TestNotificationWorker_FullQueueDrops(t *testing.T) {
	w := NewNotificationWorker(events.NewInMemoryDispatcher(), nil, 1)

	require.NoError(t, w.Publish(context.Background(), events.Event{Type: events.EventWebinarRegistered}))
	assert.ErrorIs(t, w.Publish(context.Background(), events.Event{Type: events.EventWebinarRegistered}), ErrQueueFull)
}

func TestNotificationWorker_StopHonoursContext(t *testing.T) {
	w := NewNotificationWorker(events.NewInMemoryDispatcher(), nil, 4)

	release := make(chan struct{})
	w.Subscribe(events.EventCertificateIssued, func(context.Context, events.Event) error {
		<-release
		return nil
	})
	w.Start(1)
	require.NoError(t, w.Publish(context.Background(), events.Event{Type: events.EventCertificateIssued}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Stop(ctx), context.DeadlineExceeded)
	close(release)
}
