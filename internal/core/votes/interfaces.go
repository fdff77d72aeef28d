package votes

import "context"

// Repository defines the data access interface for one vote ledger.
// Two instances exist at runtime, one over artist_votes and one over
// comment_votes; the tables have identical shape.
type Repository interface {
	// Toggle applies the three-way cast semantics atomically:
	// no existing vote inserts, same value deletes, different value
	// updates in place. The whole read-branch-write runs in a single
	// transaction so concurrent casts on the same (voter, target) pair
	// serialize on the uniqueness constraint instead of surfacing a
	// conflict.
	Toggle(ctx context.Context, voterID, targetID int64, value Value) (*CastResult, error)

	// ListByTarget returns all votes on a target, voter ids included.
	ListByTarget(ctx context.Context, targetID int64) ([]*Vote, error)

	// ListByVoter returns all votes cast by a user.
	ListByVoter(ctx context.Context, voterID int64) ([]*Vote, error)

	// DeleteByTarget removes every vote on a target. Idempotent; returns
	// the number of rows removed. Used by cascade cleanup when the
	// target entity is hard-deleted.
	DeleteByTarget(ctx context.Context, targetID int64) (int64, error)

	// DeleteByVoter removes every vote by a user. Idempotent; returns
	// the number of rows removed. Used when a user account is deleted.
	DeleteByVoter(ctx context.Context, voterID int64) (int64, error)
}

// Service defines the vote ledger operations exposed to handlers and
// to other core services (cascade deletes).
type Service interface {
	// Cast records, flips, or retracts the voter's stance on a target.
	Cast(ctx context.Context, voterID, targetID int64, value Value) (*CastResult, error)

	// GetForTarget aggregates all votes on a target by direction.
	GetForTarget(ctx context.Context, targetID int64) (*TargetVotes, error)

	// GetForVoter returns every target the voter has voted on, by direction.
	GetForVoter(ctx context.Context, voterID int64) (*VoterVotes, error)

	// DeleteForTarget bulk-removes votes on a hard-deleted target.
	DeleteForTarget(ctx context.Context, targetID int64) (int64, error)

	// DeleteForVoter bulk-removes votes by a hard-deleted user.
	DeleteForVoter(ctx context.Context, voterID int64) (int64, error)
}
