package notification

import (
	"context"

	"studyhub/models"
)

// NotificationService stores notifications and delivers pushes via FCM.
type NotificationService interface {
	// Notify stores a notification and attempts push delivery. Push
	// failures are logged, never returned.
	Notify(ctx context.Context, userID, notifType, title, body string, data map[string]string) error
	// SendPushNotification delivers a push without storing anything.
	SendPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
	// ListForUser returns the user's stored notifications, newest first.
	ListForUser(userID string, limit int64) ([]models.Notification, error)
	// UnreadCount returns the number of unread notifications.
	UnreadCount(userID string) (int64, error)
	// MarkRead flags a notification as read.
	MarkRead(id string) error
	// MarkAllRead flags all of a user's notifications as read.
	MarkAllRead(userID string) error
}
