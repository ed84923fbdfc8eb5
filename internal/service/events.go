package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mentorverse/mentorverse-api/internal/events"
)

// publisher stamps and publishes events. Publish failures never fail the
// write that produced the event.
type publisher struct {
	dispatcher events.Dispatcher
	now        func() time.Time
}

func (p publisher) publish(ctx context.Context, event events.Event) {
	if p.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		now := p.now
		if now == nil {
			now = time.Now
		}
		event.Timestamp = now().UTC()
	}
	_ = p.dispatcher.Publish(ctx, event)
}
