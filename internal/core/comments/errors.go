package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrAuthorNotFound indicates the posting user doesn't exist
	ErrAuthorNotFound = errors.New("author not found")

	// ErrArtistNotFound indicates the artist being commented on doesn't exist
	ErrArtistNotFound = errors.New("artist not found")

	// ErrReplyTargetNotFound indicates reply_to doesn't resolve to a comment
	ErrReplyTargetNotFound = errors.New("reply target comment not found")

	// ErrReplyWrongArtist indicates reply_to points to a comment on a different artist
	ErrReplyWrongArtist = errors.New("reply target belongs to a different artist")

	// ErrReplyToDeleted indicates reply_to points to a soft-deleted comment
	ErrReplyToDeleted = errors.New("cannot reply to a deleted comment")

	// ErrTextEmpty indicates the comment text is empty after trimming
	ErrTextEmpty = errors.New("comment text is required")

	// ErrCommentDeleted indicates the comment is soft-deleted and cannot be edited
	ErrCommentDeleted = errors.New("comment has been deleted")

	// ErrNotAuthorized indicates the requester is neither the author nor an admin
	ErrNotAuthorized = errors.New("not the comment's author")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrAuthorNotFound) ||
		errors.Is(err, ErrArtistNotFound) ||
		errors.Is(err, ErrReplyTargetNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTextEmpty) ||
		errors.Is(err, ErrReplyWrongArtist) ||
		errors.Is(err, ErrReplyToDeleted) ||
		errors.Is(err, ErrCommentDeleted)
}
