package worker

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/mentorverse/mentorverse-api/internal/events"
	"github.com/mentorverse/mentorverse-api/internal/service"
)

var (
	ErrQueueFull = errors.New("notification queue full")
	ErrStopped   = errors.New("notification worker stopped")
)

// NotificationWorker moves event delivery off the request path. It satisfies
// events.Dispatcher: Publish enqueues and a fixed set of goroutines hands each
// event to the wrapped dispatcher.
type NotificationWorker struct {
	inner  events.Dispatcher
	logger *zap.Logger
	queue  chan events.Event

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewNotificationWorker wraps inner with a queue of the given capacity.
func NewNotificationWorker(inner events.Dispatcher, logger *zap.Logger, buffer int) *NotificationWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if buffer <= 0 {
		buffer = 64
	}
	return &NotificationWorker{inner: inner, logger: logger, queue: make(chan events.Event, buffer)}
}

func (w *NotificationWorker) Subscribe(eventType events.EventType, handler events.EventHandler) {
	w.inner.Subscribe(eventType, handler)
}

// Publish never blocks. A full queue drops the event.
func (w *NotificationWorker) Publish(_ context.Context, event events.Event) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return ErrStopped
	}
	select {
	case w.queue <- event:
		return nil
	default:
		w.logger.Warn("dropping event", zap.String("event_type", string(event.Type)), zap.String("event_id", event.ID))
		return ErrQueueFull
	}
}

// Start launches n delivery goroutines.
func (w *NotificationWorker) Start(n int) {
	if n <= 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		w.wg.Add(1)
		go w.run()
	}
}

func (w *NotificationWorker) run() {
	defer w.wg.Done()
	for event := range w.queue {
		if err := w.inner.Publish(context.Background(), event); err != nil {
			w.logger.Error("event handler failed",
				zap.String("event_type", string(event.Type)),
				zap.String("event_id", event.ID),
				zap.Error(err))
		}
	}
}

// Stop refuses new events and waits for queued ones to be delivered or for
// ctx to end.
func (w *NotificationWorker) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.stopped {
		w.stopped = true
		close(w.queue)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StartNotificationWorker registers notification handlers and starts delivery.
func StartNotificationWorker(notificationService *service.NotificationService, w *NotificationWorker, workers int) {
	if notificationService != nil {
		notificationService.RegisterHandlers()
	}
	if w != nil {
		w.Start(workers)
	}
}
