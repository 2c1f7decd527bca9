package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueConstraint(t *testing.T) {
	uce := &UniqueConstraintError{Field: "email"}

	field, ok := IsUniqueConstraint(uce)
	assert.True(t, ok)
	assert.Equal(t, "email", field)

	// Wrapped errors are still recognized.
	field, ok = IsUniqueConstraint(fmt.Errorf("insert failed: %w", uce))
	assert.True(t, ok)
	assert.Equal(t, "email", field)

	_, ok = IsUniqueConstraint(errors.New("connection reset"))
	assert.False(t, ok)

	_, ok = IsUniqueConstraint(nil)
	assert.False(t, ok)
}

func TestMapWriteError_PassesThroughNonDuplicateErrors(t *testing.T) {
	assert.NoError(t, MapWriteError(nil, "email"))

	plain := errors.New("network timeout")
	assert.Equal(t, plain, MapWriteError(plain, "email"))
}
