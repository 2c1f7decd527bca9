package handlers

import (
	"errors"
	"net/http"

	"studyhub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	auth, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, auth)
}

// RevokeAuthTokenHandler handles DELETE /api/users/revoke. It invalidates
// the caller's own session.
func (h *UserHandler) RevokeAuthTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.UserService.RevokeAuthToken(userID); err != nil {
		logger.Error("Failed to revoke auth token", zap.String("userID", userID), zap.Error(err))
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}
