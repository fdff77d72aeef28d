package users

import "errors"

var (
	// ErrUserNotFound indicates the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidEmail indicates the email doesn't look like an address
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrPasswordTooShort indicates the password is under the minimum length
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrUsernameEmpty indicates the username is empty after trimming
	ErrUsernameEmpty = errors.New("username is required")

	// ErrInvalidCredentials indicates a failed login or step-up check.
	// Deliberately covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthorized indicates the requester may not delete this account
	ErrNotAuthorized = errors.New("not authorized to delete this account")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if an error is a validation error.
// ErrEmailTaken is deliberately excluded: it's a conflict with
// existing state, not a malformed request.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrUsernameEmpty)
}
