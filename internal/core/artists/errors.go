package artists

import "errors"

var (
	// ErrArtistNotFound indicates the requested artist doesn't exist
	ErrArtistNotFound = errors.New("artist not found")

	// ErrNameEmpty indicates the artist name is empty after trimming
	ErrNameEmpty = errors.New("artist name is required")

	// ErrAdminRequired indicates the requester lacks the admin flag
	ErrAdminRequired = errors.New("admin privilege required")

	// ErrPasswordConfirmation indicates the step-up password re-entry
	// failed on artist deletion
	ErrPasswordConfirmation = errors.New("password confirmation failed")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrArtistNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameEmpty)
}
