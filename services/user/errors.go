package user

import (
	"fmt"
	"strings"
)

// ValidationError reports one or more violated input rules. All rules
// violated by a single request are enumerated in one error.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// NotFoundError signals that no pending registration (or user) exists for
// the given key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found for %s", e.Resource, e.Key)
}

// ConflictError signals that the email or verification code is already in
// use by a durable record.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already in use", e.Field)
}

// ExpiredError signals that the verification code is past its expiry.
type ExpiredError struct{}

func (e *ExpiredError) Error() string {
	return "verification code has expired"
}

// LimitExceededError signals that the resend cap was reached and the
// registration attempt was discarded.
type LimitExceededError struct {
	Limit int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("resend limit of %d reached, registration discarded", e.Limit)
}

// InternalError covers failures with no caller remedy, such as exhausting
// the unique-code generation attempts.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return e.Reason
}
