// models/user.go
package models

import "time"

// Role values accepted by the registration workflow.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User represents a verified platform account.
type User struct {
	ID           string    `json:"id" bson:"id"`
	FirstName    string    `json:"firstName" bson:"firstName"`
	Surname      string    `json:"surname" bson:"surname"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	BirthDate    time.Time `json:"birthDate" bson:"birthDate"`

	Role           string `json:"role" bson:"role"`
	SchoolingLevel string `json:"schoolingLevel,omitempty" bson:"schoolingLevel,omitempty"`
	PlatformGoal   string `json:"platformGoal,omitempty" bson:"platformGoal,omitempty"`
	InterestArea   string `json:"interestArea,omitempty" bson:"interestArea,omitempty"`
	InstitutionID  string `json:"institutionId,omitempty" bson:"institutionId,omitempty"`

	// VerificationCode is rotated one final time when the account is created.
	// It is not used for login; it only keeps the unique index populated.
	EmailVerified    bool      `json:"emailVerified" bson:"emailVerified"`
	VerificationCode string    `json:"-" bson:"verificationCode"`
	CodeExpiresAt    time.Time `json:"-" bson:"codeExpiresAt"`

	FCMToken  string `json:"fcmToken,omitempty" bson:"fcmToken,omitempty"`
	TokenHash string `json:"-" bson:"tokenHash,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// UserUpdateRequest carries the mutable profile fields.
type UserUpdateRequest struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName,omitempty"`
	Surname        string `json:"surname,omitempty"`
	SchoolingLevel string `json:"schoolingLevel,omitempty"`
	PlatformGoal   string `json:"platformGoal,omitempty"`
	InterestArea   string `json:"interestArea,omitempty"`
	FCMToken       string `json:"fcmToken,omitempty"`
}
