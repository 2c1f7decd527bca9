package repository

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// UniqueConstraintError reports a duplicate-key violation on the named field.
// Repositories return it instead of the raw driver error so callers never
// have to inspect storage error shapes.
type UniqueConstraintError struct {
	Field string
}

func (e *UniqueConstraintError) Error() string {
	return "unique constraint violated on field " + e.Field
}

// IsUniqueConstraint reports whether err is a UniqueConstraintError and
// returns the violated field.
func IsUniqueConstraint(err error) (string, bool) {
	var uce *UniqueConstraintError
	if errors.As(err, &uce) {
		return uce.Field, true
	}
	return "", false
}

// MapWriteError converts a Mongo duplicate-key error into a
// UniqueConstraintError, guessing the field from the index name. Any other
// error is returned unchanged.
func MapWriteError(err error, fields ...string) error {
	if err == nil {
		return nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	for _, f := range fields {
		if strings.Contains(msg, f) {
			return &UniqueConstraintError{Field: f}
		}
	}
	if len(fields) > 0 {
		return &UniqueConstraintError{Field: fields[0]}
	}
	return &UniqueConstraintError{Field: "unknown"}
}
