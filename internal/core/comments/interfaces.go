package comments

import (
	"context"

	"soundmap/internal/core/identity"
)

// ExistsFunc checks that an entity id resolves to a live record.
type ExistsFunc func(ctx context.Context, id int64) (bool, error)

// VotePurger removes all votes on a set of targets. Satisfied by the
// comment-vote ledger; used when comments are hard-deleted in cascade
// so no votes are left pointing at removed rows.
type VotePurger interface {
	DeleteForTarget(ctx context.Context, targetID int64) (int64, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a new comment and fills ID and timestamps.
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a comment, soft-deleted ones included.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// UpdateText replaces the text of a comment and bumps updated_at.
	// Author, artist, reply_to and deleted are never touched.
	UpdateText(ctx context.Context, id int64, text string) (*Comment, error)

	// SoftDelete marks a comment deleted without removing the row.
	SoftDelete(ctx context.Context, id int64) error

	// ListAll returns every comment, soft-deleted ones included.
	ListAll(ctx context.Context) ([]*Comment, error)

	// ListByArtist returns all comments on an artist in creation order,
	// soft-deleted ones included (thread rendering needs placeholders).
	ListByArtist(ctx context.Context, artistID int64) ([]*Comment, error)

	// ListByAuthor returns all comments by a user.
	ListByAuthor(ctx context.Context, authorID int64) ([]*Comment, error)

	// DeleteByArtist hard-deletes every comment on an artist and returns
	// the ids of the removed rows for vote cascade. Idempotent.
	DeleteByArtist(ctx context.Context, artistID int64) ([]int64, error)

	// DeleteByAuthor hard-deletes every comment by a user and returns
	// the ids of the removed rows for vote cascade. Idempotent.
	DeleteByAuthor(ctx context.Context, authorID int64) ([]int64, error)

	// Exists reports whether a comment row exists, deleted or not.
	// Backs vote-target validation for the comment-vote ledger.
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service defines the comment operations exposed to handlers and to
// the artist/user lifecycle (cascade deletes).
type Service interface {
	Create(ctx context.Context, req CreateCommentRequest) (*Comment, error)

	// Edit replaces a comment's text. Only the author or an admin may
	// edit; deleted comments are not editable.
	Edit(ctx context.Context, commentID int64, newText string, requester identity.Identity) (*Comment, error)

	// Delete soft-deletes a comment. Only the author or an admin may
	// delete. Replies and votes on the comment are left untouched.
	Delete(ctx context.Context, commentID int64, requester identity.Identity) error

	GetByID(ctx context.Context, id int64) (*Comment, error)
	ListAll(ctx context.Context) ([]*Comment, error)
	ListByArtist(ctx context.Context, artistID int64) ([]*Comment, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*Comment, error)

	// ListThreadsByArtist returns the artist's comments assembled into
	// a reply forest, newest-first at every level.
	ListThreadsByArtist(ctx context.Context, artistID int64) ([]*ThreadNode, error)

	// DeleteForArtist hard-deletes all comments on an artist together
	// with their votes. Invoked from the artist hard-delete path.
	DeleteForArtist(ctx context.Context, artistID int64) (int64, error)

	// DeleteForAuthor hard-deletes all comments by a user together with
	// their votes. Invoked from the user hard-delete path.
	DeleteForAuthor(ctx context.Context, authorID int64) (int64, error)
}
