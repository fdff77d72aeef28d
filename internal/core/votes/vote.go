package votes

import (
	"context"
	"time"
)

// Value is a vote direction.
type Value string

const (
	ValueUp   Value = "up"
	ValueDown Value = "down"
)

// Valid reports whether v is one of the two accepted directions.
func (v Value) Valid() bool {
	return v == ValueUp || v == ValueDown
}

// Vote records one user's stance on one target (artist or comment).
// At most one vote exists per (voter, target) pair; the pair carries a
// unique constraint in storage. A retracted vote is hard-deleted, never
// soft-deleted.
type Vote struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Value     Value     `json:"value" db:"value"`
	ID        int64     `json:"id" db:"id"`
	VoterID   int64     `json:"voter" db:"voter_id"`
	TargetID  int64     `json:"target" db:"target_id"`
}

// Outcome describes what a Cast call did to the voter's existing stance.
type Outcome string

const (
	// OutcomeAdded means no prior vote existed and one was inserted.
	OutcomeAdded Outcome = "added"
	// OutcomeRemoved means the prior vote had the same value and was
	// deleted (toggle off).
	OutcomeRemoved Outcome = "removed"
	// OutcomeUpdated means the prior vote had the opposite value and was
	// flipped in place.
	OutcomeUpdated Outcome = "updated"
)

// CastResult is the three-way result of a Cast call.
// Vote is nil when Outcome is OutcomeRemoved.
type CastResult struct {
	Vote    *Vote   `json:"vote,omitempty"`
	Outcome Outcome `json:"outcome"`
}

// VoteTally aggregates one direction of votes on a target. Users lists
// every voter id so callers can test membership ("did user X vote").
type VoteTally struct {
	Users []int64 `json:"users"`
	Count int     `json:"count"`
}

// TargetVotes is the aggregate view of all votes on a single target.
type TargetVotes struct {
	Upvotes   VoteTally `json:"upvotes"`
	Downvotes VoteTally `json:"downvotes"`
}

// VoterVotes is the inverse index: every target a voter has opined on,
// split by direction.
type VoterVotes struct {
	Upvotes   []int64 `json:"upvotes"`
	Downvotes []int64 `json:"downvotes"`
}

// ExistsFunc checks that an entity id resolves to a live record.
// The service takes one for voters and one for targets, so the same
// service implementation covers both artist votes and comment votes.
type ExistsFunc func(ctx context.Context, id int64) (bool, error)
