package user

import (
	institutionRepo "studyhub/database/repository/institution"
	userRepo "studyhub/database/repository/user"
	"studyhub/models"
	"studyhub/services/email"
)

type UserService interface {
	// Registration workflow
	StartRegistration(req models.StartRegistrationRequest) (*models.PendingRegistration, error)
	ChooseRole(email, role string) (*models.PendingRegistration, error)
	CompleteProfile(req models.CompleteProfileRequest) (*models.PendingRegistration, error)
	ResendCode(email string) error
	VerifyEmail(email, code string) (*AuthResponse, error)

	// Authentication
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeAuthToken(userID string) error

	// User management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(req models.UserUpdateRequest) (*models.User, error)
	DeleteUser(userID string) error

	// Admin / utility
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo         userRepo.UserRepository
	Institutions institutionRepo.InstitutionRepository
	Pending      PendingStore
	Email        email.Sender
}

// AuthResponse contains the user's ID, session token, and profile basics.
type AuthResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	FirstName string `json:"firstName,omitempty"`
	Surname   string `json:"surname,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
}
