package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/client-registry/internal/config"
	"github.com/spec-kit/client-registry/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
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
	n.dispatcher.Subscribe(events.EventClientRegistered, n.handleClientRegistered)
	n.dispatcher.Subscribe(events.EventSupplierRegistered, n.handleSupplierRegistered)
	n.dispatcher.Subscribe(events.EventClientLoggedIn, n.handleClientLoggedIn)
}

func (n *NotificationService) handleClientRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("ClientRegistered", zap.Any("payload", event.Payload))
	n.sendWelcomeEmailStub(ctx, event)
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSupplierRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("SupplierRegistered", zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) handleClientLoggedIn(_ context.Context, event events.Event) error {
	n.logger.Info("ClientLoggedIn", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) sendWelcomeEmailStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendWelcomeEmailStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
