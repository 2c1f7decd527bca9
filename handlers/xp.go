package handlers

import (
	"errors"
	"net/http"

	"studyhub/models"
	"studyhub/services/xp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// XPHandler exposes the experience endpoints.
type XPHandler struct {
	XPService xp.XPService
}

// GetProgressHandler handles GET /api/xp/progress.
func (h *XPHandler) GetProgressHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view, err := h.XPService.GetProgress(userID)
	if err != nil {
		logger.Error("Failed to load progress", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitQuizHandler handles POST /api/xp/quiz.
func (h *XPHandler) SubmitQuizHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.QuizSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid quiz submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.XPService.ScoreQuiz(userID, req.TotalQuestions, req.CorrectCount)
	if err != nil {
		if errors.Is(err, xp.ErrInvalidQuiz) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to score quiz", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to score quiz"})
		return
	}
	c.JSON(http.StatusOK, result)
}
