package user

import (
	"testing"

	"studyhub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedVerifiedUser(t *testing.T, repo *fakeUserRepo, emailAddr, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{
		ID:            uuid.New().String(),
		FirstName:     "Ana",
		Surname:       "Silva",
		Email:         emailAddr,
		PasswordHash:  string(hash),
		Role:          models.RoleStudent,
		EmailVerified: true,
	}
	repo.users = append(repo.users, u)
	return u
}

func TestAuthenticate_Success(t *testing.T) {
	svc, repo, _ := newTestService()
	seeded := seedVerifiedUser(t, repo, "ana@example.com", "Str0ng!pass")

	auth, err := svc.Authenticate("ana@example.com", "Str0ng!pass")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, auth.ID)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, models.RoleStudent, auth.Role)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc, repo, _ := newTestService()
	seedVerifiedUser(t, repo, "ana@example.com", "Str0ng!pass")

	_, err := svc.Authenticate("ana@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Authenticate("ghost@example.com", "Str0ng!pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnverifiedEmail(t *testing.T) {
	svc, repo, _ := newTestService()
	u := seedVerifiedUser(t, repo, "ana@example.com", "Str0ng!pass")
	u.EmailVerified = false

	_, err := svc.Authenticate("ana@example.com", "Str0ng!pass")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
