package user

import (
	"context"
	"fmt"
	"time"

	"studyhub/database/repository"
	"studyhub/models"
	"studyhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// codeTTL is the validity window of a verification code.
	codeTTL = 10 * time.Minute
	// maxResends is the resend cap; reaching it discards the registration.
	maxResends = 3
)

// StartRegistration validates the step-1 payload, hashes the password and
// stores a pending registration in stage awaiting-role. Re-submitting for
// the same email overwrites any in-flight record.
func (s *DefaultUserService) StartRegistration(req models.StartRegistrationRequest) (*models.PendingRegistration, error) {
	ctx := context.Background()

	var violations []string
	if req.Email == "" || req.Password == "" || req.ConfirmPassword == "" ||
		req.FirstName == "" || req.LastName == "" || req.BirthDate == "" {
		violations = append(violations, "all fields are required")
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		violations = append(violations, "invalid email address")
	}
	if req.Password != "" {
		violations = append(violations, passwordViolations(req.Password)...)
		if req.ConfirmPassword != "" && req.Password != req.ConfirmPassword {
			violations = append(violations, "passwords do not match")
		}
	}

	var birth time.Time
	if req.BirthDate != "" {
		var err error
		birth, err = parseBirthDate(req.BirthDate)
		if err != nil {
			violations = append(violations, "invalid birth date")
		} else {
			age := ageInYears(birth, time.Now())
			if age < minAge {
				violations = append(violations, fmt.Sprintf("you must be at least %d years old", minAge))
			} else if age > maxAge {
				violations = append(violations, "invalid birth date")
			}
		}
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("StartRegistration: failed to check for existing user", zap.Error(err))
		return nil, &InternalError{Reason: "registration failed, please try again"}
	}
	if existing != nil {
		return nil, &ConflictError{Field: "email"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("StartRegistration: failed to hash password", zap.Error(err))
		return nil, &InternalError{Reason: "registration failed, please try again"}
	}

	now := time.Now()
	reg := models.PendingRegistration{
		ID:            uuid.New().String(),
		FirstName:     req.FirstName,
		Surname:       req.LastName,
		Email:         req.Email,
		PasswordHash:  string(hashed),
		BirthDate:     birth,
		Stage:         models.StageAwaitingRole,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := s.Pending.Save(ctx, req.Email, reg, pendingTTL); err != nil {
		return nil, &InternalError{Reason: "failed to save registration"}
	}
	return &reg, nil
}

// ChooseRole records the account role and advances to awaiting-profile.
func (s *DefaultUserService) ChooseRole(email, role string) (*models.PendingRegistration, error) {
	ctx := context.Background()

	if role != models.RoleAdmin && role != models.RoleStudent {
		return nil, &ValidationError{Violations: []string{"role must be admin or student"}}
	}

	reg, err := s.Pending.Get(ctx, email)
	if err != nil {
		return nil, &InternalError{Reason: "failed to load registration"}
	}
	if reg == nil {
		return nil, &NotFoundError{Resource: "pending registration", Key: email}
	}

	reg.Role = role
	reg.Stage = models.StageAwaitingProfile
	reg.LastUpdatedAt = time.Now()

	if err := s.Pending.Save(ctx, email, *reg, pendingTTL); err != nil {
		return nil, &InternalError{Reason: "failed to save registration"}
	}
	return reg, nil
}

// CompleteProfile stores the profile fields, issues a verification code and
// advances to awaiting-verification. The code is emailed to the user.
func (s *DefaultUserService) CompleteProfile(req models.CompleteProfileRequest) (*models.PendingRegistration, error) {
	ctx := context.Background()

	reg, err := s.Pending.Get(ctx, req.Email)
	if err != nil {
		return nil, &InternalError{Reason: "failed to load registration"}
	}
	if reg == nil {
		return nil, &NotFoundError{Resource: "pending registration", Key: req.Email}
	}

	code, err := s.uniqueCode(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	reg.SchoolingLevel = req.SchoolingLevel
	reg.PlatformGoal = req.PlatformGoal
	reg.InterestArea = req.InterestArea
	reg.InstitutionName = req.InstitutionName
	reg.VerificationCode = code
	reg.CodeExpiresAt = time.Now().Add(codeTTL)
	reg.ResendCount = 0
	reg.Stage = models.StageAwaitingVerification
	reg.LastUpdatedAt = time.Now()

	if err := s.Pending.Save(ctx, req.Email, *reg, pendingTTL); err != nil {
		return nil, &InternalError{Reason: "failed to save registration"}
	}

	if err := s.Email.SendVerificationEmail(req.Email, code); err != nil {
		return nil, err
	}
	return reg, nil
}

// ResendCode issues a fresh verification code. The third resend discards the
// registration entirely. The rotated code is only persisted after the email
// goes out, so a delivery failure leaves the previous code valid.
func (s *DefaultUserService) ResendCode(email string) error {
	ctx := context.Background()

	reg, err := s.Pending.Get(ctx, email)
	if err != nil {
		return &InternalError{Reason: "failed to load registration"}
	}
	if reg == nil {
		return &NotFoundError{Resource: "pending registration", Key: email}
	}

	reg.ResendCount++
	if reg.ResendCount >= maxResends {
		if err := s.Pending.Delete(ctx, email); err != nil {
			utils.GetLogger().Error("ResendCode: failed to discard registration", zap.String("email", email), zap.Error(err))
		}
		return &LimitExceededError{Limit: maxResends}
	}

	// Persist the counter before sending so failed sends still count
	// against the cap.
	reg.LastUpdatedAt = time.Now()
	if err := s.Pending.Save(ctx, email, *reg, pendingTTL); err != nil {
		return &InternalError{Reason: "failed to save registration"}
	}

	code, err := s.uniqueCode(ctx, email)
	if err != nil {
		return err
	}

	if err := s.Email.SendResendEmail(email, code); err != nil {
		return err
	}

	reg.VerificationCode = code
	reg.CodeExpiresAt = time.Now().Add(codeTTL)
	reg.LastUpdatedAt = time.Now()
	if err := s.Pending.Save(ctx, email, *reg, pendingTTL); err != nil {
		return &InternalError{Reason: "failed to save registration"}
	}
	return nil
}

// VerifyEmail checks the submitted code against the pending registration and,
// on success, promotes it to a durable user and issues a session token.
func (s *DefaultUserService) VerifyEmail(email, code string) (*AuthResponse, error) {
	ctx := context.Background()

	reg, err := s.Pending.Get(ctx, email)
	if err != nil {
		return nil, &InternalError{Reason: "failed to load registration"}
	}
	if reg == nil {
		return nil, &NotFoundError{Resource: "pending registration", Key: email}
	}

	if reg.VerificationCode != code {
		return nil, &ValidationError{Violations: []string{"verification code does not match"}}
	}
	if time.Now().After(reg.CodeExpiresAt) {
		return nil, &ExpiredError{}
	}

	var institutionID string
	if reg.InstitutionName != "" {
		inst, err := s.Institutions.GetOrCreate(reg.InstitutionName)
		if err != nil {
			utils.GetLogger().Error("VerifyEmail: failed to resolve institution", zap.Error(err))
			return nil, &InternalError{Reason: "failed to resolve institution"}
		}
		institutionID = inst.ID
	}

	// The durable record gets one final rotated code. It is never used for
	// login; it only keeps the unique index populated.
	finalCode, err := s.uniqueCode(ctx, email)
	if err != nil {
		return nil, err
	}

	newUser := models.User{
		ID:               uuid.New().String(),
		FirstName:        reg.FirstName,
		Surname:          reg.Surname,
		Email:            reg.Email,
		PasswordHash:     reg.PasswordHash,
		BirthDate:        reg.BirthDate,
		Role:             reg.Role,
		SchoolingLevel:   reg.SchoolingLevel,
		PlatformGoal:     reg.PlatformGoal,
		InterestArea:     reg.InterestArea,
		InstitutionID:    institutionID,
		EmailVerified:    true,
		VerificationCode: finalCode,
		CodeExpiresAt:    time.Now().Add(codeTTL),
	}

	if err := s.Repo.Create(&newUser); err != nil {
		if field, ok := repository.IsUniqueConstraint(err); ok {
			return nil, &ConflictError{Field: field}
		}
		utils.GetLogger().Error("VerifyEmail: failed to create user", zap.Error(err))
		return nil, &InternalError{Reason: "registration failed, please try again"}
	}

	// Best effort: a leftover pending record cannot block a restart, because
	// StartRegistration overwrites it and re-verification hits the durable
	// email uniqueness check.
	if err := s.Pending.Delete(ctx, email); err != nil {
		utils.GetLogger().Error("VerifyEmail: failed to delete pending registration", zap.String("email", email), zap.Error(err))
	}

	token, err := utils.GenerateToken(newUser.ID, newUser.Email, utils.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("VerifyEmail: failed to generate auth token", zap.Error(err))
		return nil, &InternalError{Reason: "registration succeeded but sign-in failed, please log in"}
	}

	return &AuthResponse{
		ID:        newUser.ID,
		Token:     token,
		FirstName: newUser.FirstName,
		Surname:   newUser.Surname,
		Email:     newUser.Email,
		Role:      newUser.Role,
	}, nil
}
