package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"soundmap/internal/core/votes"
)

// uniqueViolation is the Postgres error code for a unique constraint hit
const uniqueViolation = "23505"

type postgresVoteRepo struct {
	db     *sql.DB
	table  string // artist_votes or comment_votes
	target string // target id column: artist_id or comment_id
}

// NewArtistVoteRepository creates the ledger over artist_votes
func NewArtistVoteRepository(db *sql.DB) votes.Repository {
	return &postgresVoteRepo{db: db, table: "artist_votes", target: "artist_id"}
}

// NewCommentVoteRepository creates the ledger over comment_votes
func NewCommentVoteRepository(db *sql.DB) votes.Repository {
	return &postgresVoteRepo{db: db, table: "comment_votes", target: "comment_id"}
}

// Toggle applies the cast semantics in one transaction:
// same-value vote deleted (toggle off), otherwise an upsert keyed on
// the (voter, target) unique constraint inserts or flips in place.
// (xmax = 0) distinguishes a fresh insert from a conflict-update, so
// a concurrent cast that loses the insert race lands on the update
// arm instead of surfacing a conflict.
func (r *postgresVoteRepo) Toggle(ctx context.Context, voterID, targetID int64, value votes.Value) (*votes.CastResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin toggle transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Toggle off: a vote with the same value is retracted outright
	del := fmt.Sprintf(`
		DELETE FROM %s
		WHERE voter_id = $1 AND %s = $2 AND value = $3
	`, r.table, r.target)

	result, err := tx.ExecContext(ctx, del, voterID, targetID, string(value))
	if err != nil {
		return nil, fmt.Errorf("failed to toggle off vote: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check toggle result: %w", err)
	}
	if removed > 0 {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit toggle: %w", err)
		}
		return &votes.CastResult{Outcome: votes.OutcomeRemoved}, nil
	}

	// No same-value vote: insert, or flip an opposite-value vote in place
	upsert := fmt.Sprintf(`
		INSERT INTO %s (voter_id, %s, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (voter_id, %s) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING id, value, created_at, updated_at, (xmax = 0) AS inserted
	`, r.table, r.target, r.target)

	vote := &votes.Vote{VoterID: voterID, TargetID: targetID}
	var inserted bool
	err = tx.QueryRowContext(ctx, upsert, voterID, targetID, string(value)).
		Scan(&vote.ID, &vote.Value, &vote.CreatedAt, &vote.UpdatedAt, &inserted)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			// Should not happen with DO UPDATE, but classify anyway
			return nil, votes.ErrVoteConflict
		}
		return nil, fmt.Errorf("failed to upsert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit toggle: %w", err)
	}

	outcome := votes.OutcomeUpdated
	if inserted {
		outcome = votes.OutcomeAdded
	}
	return &votes.CastResult{Outcome: outcome, Vote: vote}, nil
}

// ListByTarget returns all votes on a target
func (r *postgresVoteRepo) ListByTarget(ctx context.Context, targetID int64) ([]*votes.Vote, error) {
	query := fmt.Sprintf(`
		SELECT id, voter_id, %s, value, created_at, updated_at
		FROM %s
		WHERE %s = $1
		ORDER BY created_at
	`, r.target, r.table, r.target)

	return r.list(ctx, query, targetID)
}

// ListByVoter returns all votes cast by a user
func (r *postgresVoteRepo) ListByVoter(ctx context.Context, voterID int64) ([]*votes.Vote, error) {
	query := fmt.Sprintf(`
		SELECT id, voter_id, %s, value, created_at, updated_at
		FROM %s
		WHERE voter_id = $1
		ORDER BY created_at
	`, r.target, r.table)

	return r.list(ctx, query, voterID)
}

func (r *postgresVoteRepo) list(ctx context.Context, query string, arg int64) ([]*votes.Vote, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*votes.Vote
	for rows.Next() {
		var vote votes.Vote
		err := rows.Scan(
			&vote.ID, &vote.VoterID, &vote.TargetID,
			&vote.Value, &vote.CreatedAt, &vote.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		result = append(result, &vote)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return result, nil
}

// DeleteByTarget removes every vote on a target. Idempotent.
func (r *postgresVoteRepo) DeleteByTarget(ctx context.Context, targetID int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.table, r.target)
	return r.deleteAll(ctx, query, targetID)
}

// DeleteByVoter removes every vote by a user. Idempotent.
func (r *postgresVoteRepo) DeleteByVoter(ctx context.Context, voterID int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE voter_id = $1`, r.table)
	return r.deleteAll(ctx, query, voterID)
}

func (r *postgresVoteRepo) deleteAll(ctx context.Context, query string, arg int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, query, arg)
	if err != nil {
		return 0, fmt.Errorf("failed to delete votes: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check delete result: %w", err)
	}
	return n, nil
}
