package handlers

import (
	"net/http"
	"strconv"

	"studyhub/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the stored notification endpoints.
type NotificationHandler struct {
	NotificationService notification.NotificationService
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	items, err := h.NotificationService.ListForUser(userID, limit)
	if err != nil {
		logger.Error("Failed to list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// UnreadCountHandler handles GET /api/notifications/unread.
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	count, err := h.NotificationService.UnreadCount(userID)
	if err != nil {
		logger.Error("Failed to count unread notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkReadHandler handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.NotificationService.MarkRead(c.Param("id")); err != nil {
		logger.Error("Failed to mark notification read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}

// MarkAllReadHandler handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if err := h.NotificationService.MarkAllRead(userID); err != nil {
		logger.Error("Failed to mark all notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked read"})
}
