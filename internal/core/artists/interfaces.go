package artists

import (
	"context"

	"soundmap/internal/core/identity"
)

// Repository defines the data access interface for artists
type Repository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id int64) (*Artist, error)
	ListByArea(ctx context.Context, areaID int64) ([]*Artist, error)

	// Exists reports whether an artist row exists. Backs the vote-target
	// and comment-artist existence checks.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete hard-removes the artist row. Idempotent.
	Delete(ctx context.Context, id int64) error
}

// PasswordVerifier re-checks a user's own password for step-up
// confirmation. Satisfied by the users service.
type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, userID int64, password string) error
}

// CommentCascader removes a deleted artist's comments (and their votes).
type CommentCascader interface {
	DeleteForArtist(ctx context.Context, artistID int64) (int64, error)
}

// VoteCascader removes all votes on a deleted artist.
type VoteCascader interface {
	DeleteForTarget(ctx context.Context, targetID int64) (int64, error)
}

// Service defines the lean artist directory operations
type Service interface {
	Create(ctx context.Context, req CreateArtistRequest, requester identity.Identity) (*Artist, error)
	GetByID(ctx context.Context, id int64) (*Artist, error)
	ListByArea(ctx context.Context, areaID int64) ([]*Artist, error)

	// Delete hard-removes an artist with its votes and comments.
	// Requires admin AND a correct re-entered password for the admin's
	// own account: a step-up confirmation beyond the bearer token,
	// because artist deletion is destructive and hard to reverse.
	Delete(ctx context.Context, artistID int64, requester identity.Identity, password string) error
}
