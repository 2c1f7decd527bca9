package user

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	numberPattern = regexp.MustCompile(`[0-9]`)
	symbolPattern = regexp.MustCompile("[!@#$%^&*()\\-_=+\\[\\]{};:'\",.<>/?\\\\|`~]")
)

const (
	minAge = 13
	maxAge = 125
)

// passwordViolations returns every complexity rule the password violates.
func passwordViolations(pw string) []string {
	var violations []string
	if len(pw) < 8 {
		violations = append(violations, "password must be at least 8 characters long")
	}
	if !upperPattern.MatchString(pw) {
		violations = append(violations, "password must include at least one uppercase letter")
	}
	if !lowerPattern.MatchString(pw) {
		violations = append(violations, "password must include at least one lowercase letter")
	}
	if !numberPattern.MatchString(pw) {
		violations = append(violations, "password must include at least one number")
	}
	if !symbolPattern.MatchString(pw) {
		violations = append(violations, "password must include at least one symbol")
	}
	return violations
}

// parseBirthDate accepts a DD-MM-YYYY literal or an ISO-parseable string.
func parseBirthDate(raw string) (time.Time, error) {
	for _, layout := range []string{"02-01-2006", "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid birth date %q", raw)
}

// ageInYears computes whole calendar years between birth and now,
// decrementing when the birthday has not yet occurred this year.
func ageInYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// generateCode produces a random 5-digit numeric verification code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}

// codeAttempts bounds the unique-code generation loop.
const codeAttempts = 10

// uniqueCode generates a verification code that collides with no other
// pending registration and no durable user. Exhausting the attempt limit
// surfaces an InternalError.
func (s *DefaultUserService) uniqueCode(ctx context.Context, excludeEmail string) (string, error) {
	pendings, err := s.Pending.All(ctx)
	if err != nil {
		return "", &InternalError{Reason: "failed to scan pending registrations"}
	}

	inPending := make(map[string]bool, len(pendings))
	for _, p := range pendings {
		if p.Email == excludeEmail {
			continue
		}
		if p.VerificationCode != "" {
			inPending[p.VerificationCode] = true
		}
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			return "", &InternalError{Reason: err.Error()}
		}
		if inPending[code] {
			continue
		}
		existing, err := s.Repo.GetByVerificationCode(code)
		if err != nil {
			return "", &InternalError{Reason: "failed to check verification code uniqueness"}
		}
		if existing != nil {
			continue
		}
		return code, nil
	}
	return "", &InternalError{Reason: fmt.Sprintf("could not generate a unique verification code in %d attempts", codeAttempts)}
}
