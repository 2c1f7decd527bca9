package userRepo

import (
	"studyhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
//
// Create and Update return *repository.UniqueConstraintError when the email
// or verificationCode unique index is violated.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email, or (nil, nil) when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByVerificationCode retrieves a user holding the given code, or (nil, nil).
	GetByVerificationCode(code string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateWithDocument applies a partial $set update.
	UpdateWithDocument(id string, fields bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
