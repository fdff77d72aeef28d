package votes

import "errors"

var (
	// ErrVoterNotFound indicates the casting user doesn't exist
	ErrVoterNotFound = errors.New("voter not found")

	// ErrTargetNotFound indicates the artist/comment being voted on doesn't exist
	ErrTargetNotFound = errors.New("vote target not found")

	// ErrInvalidValue indicates the vote value is not "up" or "down"
	ErrInvalidValue = errors.New("invalid vote value: must be 'up' or 'down'")

	// ErrVoteConflict indicates a concurrent cast raced on the
	// (voter, target) uniqueness constraint. The repository retries the
	// toggle internally; callers never see this error.
	ErrVoteConflict = errors.New("concurrent vote on same target")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVoterNotFound) ||
		errors.Is(err, ErrTargetNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}
