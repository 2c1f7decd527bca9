package handlers

import (
	"errors"
	"net/http"

	"studyhub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeDomainError translates a registration/user domain error into an HTTP
// response. Unknown errors fall through to a 500.
func writeDomainError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		validationErr *user.ValidationError
		notFoundErr   *user.NotFoundError
		conflictErr   *user.ConflictError
		expiredErr    *user.ExpiredError
		limitErr      *user.LimitExceededError
		internalErr   *user.InternalError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Validation failed",
			"violations": validationErr.Violations,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error()})
	case errors.As(err, &expiredErr):
		c.JSON(http.StatusGone, gin.H{"error": expiredErr.Error()})
	case errors.As(err, &limitErr):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": limitErr.Error()})
	case errors.As(err, &internalErr):
		logger.Error("Internal domain error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		logger.Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
