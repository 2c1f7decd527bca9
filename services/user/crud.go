package user

import (
	"fmt"

	"studyhub/models"
	"studyhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, &NotFoundError{Resource: "user", Key: email}
	}
	return userRec, nil
}

// UpdateUser updates non-empty profile fields using a partial update.
func (s *DefaultUserService) UpdateUser(req models.UserUpdateRequest) (*models.User, error) {
	logger := utils.GetLogger()

	if req.ID == "" {
		return nil, &ValidationError{Violations: []string{"user ID is required for update"}}
	}

	updateFields := bson.M{}
	if req.FirstName != "" {
		updateFields["firstName"] = req.FirstName
	}
	if req.Surname != "" {
		updateFields["surname"] = req.Surname
	}
	if req.SchoolingLevel != "" {
		updateFields["schoolingLevel"] = req.SchoolingLevel
	}
	if req.PlatformGoal != "" {
		updateFields["platformGoal"] = req.PlatformGoal
	}
	if req.InterestArea != "" {
		updateFields["interestArea"] = req.InterestArea
	}
	if req.FCMToken != "" {
		updateFields["fcmToken"] = req.FCMToken
	}

	if len(updateFields) == 0 {
		return nil, &ValidationError{Violations: []string{"no updatable fields provided"}}
	}

	if err := s.Repo.UpdateWithDocument(req.ID, updateFields); err != nil {
		logger.Error("Failed to update user", zap.String("userID", req.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Repo.GetByID(req.ID)
}

// DeleteUser removes a user account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	return s.Repo.Delete(userID)
}

// GetAllUsers retrieves all users.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
