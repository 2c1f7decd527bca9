package handlers

import (
	"net/http"

	"studyhub/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetUserByEmailHandler handles GET /api/users/email/:email.
func (h *UserHandler) GetUserByEmailHandler(c *gin.Context) {
	logger := getLogger(c)

	email := c.Param("email")
	usr, err := h.UserService.GetUserByEmail(email)
	if err != nil {
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = userID

	updated, err := h.UserService.UpdateUser(req)
	if err != nil {
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUserHandler handles DELETE /api/users/me.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.UserService.DeleteUser(userID); err != nil {
		logger.Error("Delete error", zap.String("id", userID), zap.Error(err))
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	logger := getLogger(c)

	users, err := h.UserService.GetAllUsers()
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}
