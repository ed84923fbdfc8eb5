package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mentorverse/mentorverse-api/internal/config"
	"github.com/mentorverse/mentorverse-api/internal/events"
)

// NotificationService turns domain events into outbound notifications.
// Delivery is stubbed: each channel logs what it would have sent.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventApplicationSubmitted, n.emailAndWebhook)
	n.dispatcher.Subscribe(events.EventApplicationStatusChanged, n.emailAndWebhook)
	n.dispatcher.Subscribe(events.EventCourseEnrolled, n.webhookOnly)
	n.dispatcher.Subscribe(events.EventWebinarRegistered, n.emailAndWebhook)
	n.dispatcher.Subscribe(events.EventCertificateIssued, n.emailAndWebhook)
}

func (n *NotificationService) emailAndWebhook(ctx context.Context, event events.Event) error {
	n.logEvent(event)
	n.sendEmail(ctx, event)
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) webhookOnly(ctx context.Context, event events.Event) error {
	n.logEvent(event)
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotificationService) logEvent(event events.Event) {
	n.logger.Info("domain event",
		zap.String("event_type", string(event.Type)),
		zap.String("event_id", event.ID),
		zap.Int64("user_id", event.UserID),
		zap.Any("payload", event.Payload))
}

func (n *NotificationService) sendEmail(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" || event.Email == "" {
		return
	}
	n.logger.Debug("email notification",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", event.Email),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhook(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("webhook notification",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)),
		zap.String("event_id", event.ID))
}
