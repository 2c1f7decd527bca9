package user

import (
	"context"
	"errors"

	"studyhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers unknown emails and wrong passwords alike, so
// the response does not leak which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Authenticate verifies the password for a verified account and issues a
// session token. The token hash is cached for the auth middleware fast path.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, &InternalError{Reason: "authentication failed, please try again"}
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}
	if !userRec.EmailVerified {
		return nil, &ValidationError{Violations: []string{"email is not verified"}}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, utils.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token", zap.Error(err))
		return nil, &InternalError{Reason: "authentication failed, please try again"}
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateWithDocument(userRec.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, &InternalError{Reason: "authentication failed, please try again"}
	}

	// Warm the auth cache; a miss just falls back to the DB lookup.
	if authCache := utils.AuthCacheClient; authCache != nil {
		cacheKey := utils.AuthCachePrefix + userRec.ID
		if err := authCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Authenticate: failed to warm auth cache", zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:        userRec.ID,
		Token:     token,
		FirstName: userRec.FirstName,
		Surname:   userRec.Surname,
		Email:     userRec.Email,
		Role:      userRec.Role,
	}, nil
}

// RevokeAuthToken invalidates the user's current session token.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateWithDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return err
	}
	if authCache := utils.AuthCacheClient; authCache != nil {
		if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
			utils.GetLogger().Warn("RevokeAuthToken: failed to clear auth cache", zap.Error(err))
		}
	}
	return nil
}
