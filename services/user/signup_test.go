package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"studyhub/database/repository"
	"studyhub/models"
	"studyhub/services/email"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo is an in-memory UserRepository for workflow tests.
type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s not found", id)
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByVerificationCode(code string) (*models.User, error) {
	for _, u := range r.users {
		if u.VerificationCode == code {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return &repository.UniqueConstraintError{Field: "email"}
		}
		if u.VerificationCode == user.VerificationCode {
			return &repository.UniqueConstraintError{Field: "verificationCode"}
		}
	}
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("user %s not found", user.ID)
}

func (r *fakeUserRepo) UpdateWithDocument(id string, fields bson.M) error {
	_, err := r.GetByID(id)
	return err
}

func (r *fakeUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %s not found", id)
}

// fakeInstitutionRepo resolves institutions in memory.
type fakeInstitutionRepo struct {
	byName map[string]*models.Institution
}

func (r *fakeInstitutionRepo) GetOrCreate(name string) (*models.Institution, error) {
	if r.byName == nil {
		r.byName = make(map[string]*models.Institution)
	}
	if inst, ok := r.byName[name]; ok {
		return inst, nil
	}
	inst := &models.Institution{ID: uuid.New().String(), Name: name}
	r.byName[name] = inst
	return inst, nil
}

func (r *fakeInstitutionRepo) GetByID(id string) (*models.Institution, error) {
	for _, inst := range r.byName {
		if inst.ID == id {
			return inst, nil
		}
	}
	return nil, fmt.Errorf("institution %s not found", id)
}

// recordingSender captures sent codes and can simulate delivery failures.
type recordingSender struct {
	sent     []string
	lastCode string
	fail     bool
}

func (s *recordingSender) SendVerificationEmail(to, code string) error {
	return s.record(to, code)
}

func (s *recordingSender) SendResendEmail(to, code string) error {
	return s.record(to, code)
}

func (s *recordingSender) record(to, code string) error {
	if s.fail {
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, to)
	s.lastCode = code
	return nil
}

var _ email.Sender = (*recordingSender)(nil)

func newTestService() (*DefaultUserService, *fakeUserRepo, *recordingSender) {
	repo := &fakeUserRepo{}
	sender := &recordingSender{}
	svc := &DefaultUserService{
		Repo:         repo,
		Institutions: &fakeInstitutionRepo{},
		Pending:      NewMemoryPendingStore(),
		Email:        sender,
	}
	return svc, repo, sender
}

func validStartRequest(emailAddr string) models.StartRegistrationRequest {
	return models.StartRegistrationRequest{
		Email:           emailAddr,
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		FirstName:       "Ana",
		LastName:        "Silva",
		BirthDate:       "15-03-2004",
	}
}

// advanceToVerification walks a registration to the awaiting-verification
// stage and returns the emailed code.
func advanceToVerification(t *testing.T, svc *DefaultUserService, sender *recordingSender, emailAddr string) string {
	t.Helper()

	_, err := svc.StartRegistration(validStartRequest(emailAddr))
	require.NoError(t, err)

	_, err = svc.ChooseRole(emailAddr, models.RoleStudent)
	require.NoError(t, err)

	_, err = svc.CompleteProfile(models.CompleteProfileRequest{
		Email:           emailAddr,
		SchoolingLevel:  "high-school",
		PlatformGoal:    "exam-prep",
		InterestArea:    "math",
		InstitutionName: "Springfield High",
	})
	require.NoError(t, err)
	require.NotEmpty(t, sender.lastCode)

	return sender.lastCode
}

func TestStartRegistration_Valid(t *testing.T) {
	svc, _, _ := newTestService()

	pending, err := svc.StartRegistration(validStartRequest("ana@example.com"))
	require.NoError(t, err)

	assert.Equal(t, models.StageAwaitingRole, pending.Stage)
	assert.Equal(t, "Ana", pending.FirstName)
	assert.Equal(t, "Silva", pending.Surname)
	assert.NotEqual(t, "Str0ng!pass", pending.PasswordHash)

	stored, err := svc.Pending.Get(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.StageAwaitingRole, stored.Stage)
}

func TestStartRegistration_EnumeratesAllPasswordViolations(t *testing.T) {
	svc, _, _ := newTestService()

	req := validStartRequest("ana@example.com")
	req.Password = "abc12345"
	req.ConfirmPassword = "abc12345"

	_, err := svc.StartRegistration(req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// abc12345 is long enough with lowercase and digits; it only lacks an
	// uppercase letter and a symbol.
	assert.Len(t, vErr.Violations, 2)
	assert.Contains(t, vErr.Violations, "password must include at least one uppercase letter")
	assert.Contains(t, vErr.Violations, "password must include at least one symbol")
}

func TestStartRegistration_AgeBounds(t *testing.T) {
	svc, _, _ := newTestService()
	now := time.Now()

	cases := []struct {
		name    string
		birth   time.Time
		allowed bool
	}{
		{"twelve years old", now.AddDate(-13, 0, 1), false},
		{"exactly thirteen", now.AddDate(-13, 0, 0), true},
		{"over max age", now.AddDate(-126, 0, 0), false},
	}

	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validStartRequest(fmt.Sprintf("age%d@example.com", i))
			req.BirthDate = tc.birth.Format("02-01-2006")

			_, err := svc.StartRegistration(req)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
			}
		})
	}
}

func TestStartRegistration_ExistingUserConflicts(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.users = append(repo.users, &models.User{
		ID:    uuid.New().String(),
		Email: "ana@example.com",
	})

	_, err := svc.StartRegistration(validStartRequest("ana@example.com"))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "email", cErr.Field)
}

func TestChooseRole_RejectsUnknownRole(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.StartRegistration(validStartRequest("ana@example.com"))
	require.NoError(t, err)

	_, err = svc.ChooseRole("ana@example.com", "moderator")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestChooseRole_MissingRegistration(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ChooseRole("ghost@example.com", models.RoleStudent)
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestVerifyEmail_FullFlow(t *testing.T) {
	svc, repo, sender := newTestService()
	code := advanceToVerification(t, svc, sender, "ana@example.com")

	auth, err := svc.VerifyEmail("ana@example.com", code)
	require.NoError(t, err)
	assert.NotEmpty(t, auth.ID)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "ana@example.com", auth.Email)
	assert.Equal(t, models.RoleStudent, auth.Role)

	created, err := repo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.EmailVerified)
	assert.NotEmpty(t, created.InstitutionID)

	// Verification consumes the pending registration.
	_, err = svc.VerifyEmail("ana@example.com", code)
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestVerifyEmail_CodeMismatch(t *testing.T) {
	svc, _, sender := newTestService()
	code := advanceToVerification(t, svc, sender, "ana@example.com")

	wrong := "00000"
	if wrong == code {
		wrong = "00001"
	}
	_, err := svc.VerifyEmail("ana@example.com", wrong)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// The failed attempt does not consume the registration.
	auth, err := svc.VerifyEmail("ana@example.com", code)
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
}

func TestVerifyEmail_ExpiredCode(t *testing.T) {
	svc, _, sender := newTestService()
	code := advanceToVerification(t, svc, sender, "ana@example.com")

	ctx := context.Background()
	reg, err := svc.Pending.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	reg.CodeExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, svc.Pending.Save(ctx, "ana@example.com", *reg, pendingTTL))

	_, err = svc.VerifyEmail("ana@example.com", code)
	var eErr *ExpiredError
	assert.ErrorAs(t, err, &eErr)
}

func TestVerifyEmail_MismatchReportedBeforeExpiry(t *testing.T) {
	svc, _, sender := newTestService()
	code := advanceToVerification(t, svc, sender, "ana@example.com")

	ctx := context.Background()
	reg, err := svc.Pending.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	reg.CodeExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, svc.Pending.Save(ctx, "ana@example.com", *reg, pendingTTL))

	wrong := "00000"
	if wrong == code {
		wrong = "00001"
	}
	_, err = svc.VerifyEmail("ana@example.com", wrong)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestResendCode_RotatesCode(t *testing.T) {
	svc, _, sender := newTestService()
	first := advanceToVerification(t, svc, sender, "ana@example.com")

	require.NoError(t, svc.ResendCode("ana@example.com"))
	assert.Len(t, sender.sent, 2)

	reg, err := svc.Pending.Get(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, sender.lastCode, reg.VerificationCode)
	assert.Equal(t, 1, reg.ResendCount)

	// The old code no longer verifies unless the rotation produced the same
	// five digits again.
	if first != reg.VerificationCode {
		_, err = svc.VerifyEmail("ana@example.com", first)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	}
}

func TestResendCode_ThirdCallDiscardsRegistration(t *testing.T) {
	svc, _, sender := newTestService()
	advanceToVerification(t, svc, sender, "ana@example.com")

	require.NoError(t, svc.ResendCode("ana@example.com"))
	require.NoError(t, svc.ResendCode("ana@example.com"))

	err := svc.ResendCode("ana@example.com")
	var lErr *LimitExceededError
	require.ErrorAs(t, err, &lErr)
	assert.Equal(t, maxResends, lErr.Limit)

	reg, err := svc.Pending.Get(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, reg)

	// A fresh registration for the same email starts over cleanly.
	pending, err := svc.StartRegistration(validStartRequest("ana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, models.StageAwaitingRole, pending.Stage)
}

func TestResendCode_FailedSendKeepsOldCode(t *testing.T) {
	svc, _, sender := newTestService()
	code := advanceToVerification(t, svc, sender, "ana@example.com")

	sender.fail = true
	err := svc.ResendCode("ana@example.com")
	require.Error(t, err)

	reg, err := svc.Pending.Get(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, reg)

	// The previous code stays valid, but the failed attempt still counts
	// against the resend cap.
	assert.Equal(t, code, reg.VerificationCode)
	assert.Equal(t, 1, reg.ResendCount)
}

func TestCompleteProfile_MissingRegistration(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CompleteProfile(models.CompleteProfileRequest{Email: "ghost@example.com"})
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestCompleteProfile_CodeUniqueAcrossPendings(t *testing.T) {
	svc, _, sender := newTestService()

	ctx := context.Background()
	seen := make(map[string]string)
	for i := 0; i < 5; i++ {
		addr := fmt.Sprintf("user%d@example.com", i)
		advanceToVerification(t, svc, sender, addr)

		reg, err := svc.Pending.Get(ctx, addr)
		require.NoError(t, err)
		if owner, dup := seen[reg.VerificationCode]; dup {
			t.Fatalf("code %s issued to both %s and %s", reg.VerificationCode, owner, addr)
		}
		seen[reg.VerificationCode] = addr
	}
}
