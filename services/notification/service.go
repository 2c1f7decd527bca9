package notification

import (
	"context"
	"fmt"

	notificationRepo "studyhub/database/repository/notification"
	userRepo "studyhub/database/repository/user"
	"studyhub/models"
	"studyhub/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
	Repo  notificationRepo.NotificationRepository
}

func NewDefaultNotificationService(
	users userRepo.UserRepository,
	repo notificationRepo.NotificationRepository,
) (*DefaultNotificationService, error) {
	if users == nil || repo == nil {
		return nil, fmt.Errorf("notification service initialization error: nil dependency")
	}
	return &DefaultNotificationService{Users: users, Repo: repo}, nil
}

func (s *DefaultNotificationService) Notify(ctx context.Context, userID, notifType, title, body string, data map[string]string) error {
	n := &models.Notification{
		ID:     uuid.New().String(),
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
		Data:   data,
	}
	if err := s.Repo.Create(n); err != nil {
		return err
	}

	if err := s.SendPushNotification(ctx, userID, title, body, data); err != nil {
		utils.GetLogger().Warn("Notify: push delivery failed",
			zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

// SendPushNotification looks up the user's FCM token and sends a push.
func (s *DefaultNotificationService) SendPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("push delivery disabled: FCM client not initialized")
	}

	u, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("SendPushNotification: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendPushNotification: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) ListForUser(userID string, limit int64) ([]models.Notification, error) {
	return s.Repo.GetByUser(userID, limit)
}

func (s *DefaultNotificationService) UnreadCount(userID string) (int64, error) {
	return s.Repo.CountUnread(userID)
}

func (s *DefaultNotificationService) MarkRead(id string) error {
	return s.Repo.MarkRead(id)
}

func (s *DefaultNotificationService) MarkAllRead(userID string) error {
	return s.Repo.MarkAllRead(userID)
}
