package users

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrInvalidEmail))
	assert.True(t, IsValidationError(ErrPasswordTooShort))
	assert.True(t, IsValidationError(ErrUsernameEmpty))

	// A duplicate email is a conflict, not a validation failure
	assert.False(t, IsValidationError(ErrEmailTaken))

	assert.True(t, IsValidationError(fmt.Errorf("register: %w", ErrInvalidEmail)))
}
