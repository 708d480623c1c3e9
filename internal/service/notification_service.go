package service

import (
	"context"
	"fmt"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
	"go.uber.org/zap"
)

type notificationAPI interface {
	ListNotifications(ctx context.Context, userID string) ([]*model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}

// NotificationService reads the per-user feed and flags items read.
type NotificationService struct {
	api    notificationAPI
	logger *zap.Logger
}

func NewNotificationService(api notificationAPI, logger *zap.Logger) *NotificationService {
	return &NotificationService{api: api, logger: logger}
}

// Feed fetches the user's notifications in backend order (newest first).
func (s *NotificationService) Feed(ctx context.Context, userID string) ([]*model.Notification, error) {
	return s.api.ListNotifications(ctx, userID)
}

// MarkRead flags one notification as read. The caller refetches the feed
// afterwards to re-render the screen.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	if err := s.api.MarkNotificationRead(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	s.logger.Info("Notification marked read",
		zap.String("user_id", userID),
		zap.String("notification_id", notificationID),
	)

	return nil
}
