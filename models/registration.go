package models

import "time"

// Registration stages. Transitions never skip a stage.
const (
	StageAwaitingRole         = "awaiting-role"
	StageAwaitingProfile      = "awaiting-profile"
	StageAwaitingVerification = "awaiting-verification"
)

// PendingRegistration is the transient record holding an in-progress signup,
// keyed by email, until email verification completes.
type PendingRegistration struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	BirthDate    time.Time `json:"birthDate"`

	Role            string `json:"role,omitempty"`
	SchoolingLevel  string `json:"schoolingLevel,omitempty"`
	PlatformGoal    string `json:"platformGoal,omitempty"`
	InterestArea    string `json:"interestArea,omitempty"`
	InstitutionName string `json:"institutionName,omitempty"`

	VerificationCode string    `json:"verificationCode,omitempty"`
	CodeExpiresAt    time.Time `json:"codeExpiresAt,omitempty"`
	ResendCount      int       `json:"resendCount"`

	Stage         string    `json:"stage"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// StartRegistrationRequest is the payload for step 1 of the signup flow.
type StartRegistrationRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	BirthDate       string `json:"birthDate" binding:"required"`
}

// ChooseRoleRequest is the payload for step 2.
type ChooseRoleRequest struct {
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// CompleteProfileRequest is the payload for step 3.
type CompleteProfileRequest struct {
	Email           string `json:"email" binding:"required"`
	SchoolingLevel  string `json:"schoolingLevel"`
	PlatformGoal    string `json:"platformGoal"`
	InterestArea    string `json:"interestArea"`
	InstitutionName string `json:"institutionName"`
}

// VerifyEmailRequest is the payload for the final verification step.
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// ResendCodeRequest asks for a fresh verification code.
type ResendCodeRequest struct {
	Email string `json:"email" binding:"required"`
}
