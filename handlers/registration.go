package handlers

import (
	"net/http"

	"studyhub/models"
	"studyhub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler groups the signup, auth, and profile endpoints around the
// user service.
type UserHandler struct {
	UserService user.UserService
}

// StartRegistrationHandler handles POST /api/registration/start.
func (h *UserHandler) StartRegistrationHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.StartRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid start registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	pending, err := h.UserService.StartRegistration(req)
	if err != nil {
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"email": pending.Email,
		"stage": pending.Stage,
	})
}

// ChooseRoleHandler handles POST /api/registration/role.
func (h *UserHandler) ChooseRoleHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChooseRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid choose role request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	pending, err := h.UserService.ChooseRole(req.Email, req.Role)
	if err != nil {
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"email": pending.Email,
		"role":  pending.Role,
		"stage": pending.Stage,
	})
}

// CompleteProfileHandler handles POST /api/registration/profile.
func (h *UserHandler) CompleteProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid complete profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	pending, err := h.UserService.CompleteProfile(req)
	if err != nil {
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"email":   pending.Email,
		"stage":   pending.Stage,
		"message": "Verification code sent",
	})
}

// ResendCodeHandler handles POST /api/registration/resend.
func (h *UserHandler) ResendCodeHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid resend code request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserService.ResendCode(req.Email); err != nil {
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code resent"})
}

// VerifyEmailHandler handles POST /api/registration/verify. On success the
// account is created and a session token returned.
func (h *UserHandler) VerifyEmailHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid verify email request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	auth, err := h.UserService.VerifyEmail(req.Email, req.Code)
	if err != nil {
		writeDomainError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, auth)
}
