package users

import (
	"context"

	"soundmap/internal/core/identity"
)

// Repository defines the data access interface for user accounts
type Repository interface {
	// Create inserts a new user and fills ID and timestamps.
	// Returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user *User) error

	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail returns the user including the password hash.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Exists reports whether a user row exists. Backs the voter and
	// author existence checks in the vote and comment services.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete hard-removes the user row. Idempotent.
	Delete(ctx context.Context, id int64) error
}

// TokenIssuer signs bearer tokens for authenticated identities.
// Satisfied by identity.TokenCodec.
type TokenIssuer interface {
	Issue(id identity.Identity) (string, error)
}

// CommentCascader removes a deleted user's comments (and their votes).
type CommentCascader interface {
	DeleteForAuthor(ctx context.Context, authorID int64) (int64, error)
}

// VoteCascader removes a deleted user's votes from one ledger.
type VoteCascader interface {
	DeleteForVoter(ctx context.Context, voterID int64) (int64, error)
}

// Service defines the identity-gate operations: account creation,
// login, lookups, step-up password confirmation, and account deletion
// with its cascades.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	GetByID(ctx context.Context, id int64) (*User, error)

	// VerifyPassword re-checks the user's own password. Used for the
	// step-up confirmation on destructive actions (artist deletion).
	VerifyPassword(ctx context.Context, userID int64, password string) error

	// Delete hard-removes an account (self or admin) and cascades the
	// user's comments and votes on both ledgers.
	Delete(ctx context.Context, userID int64, requester identity.Identity) error
}
