package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"soundmap/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (author_id, artist_id, reply_to, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	var replyTo sql.NullInt64
	if comment.ReplyTo != nil {
		replyTo = sql.NullInt64{Int64: *comment.ReplyTo, Valid: true}
	}

	err := r.db.QueryRowContext(
		ctx, query,
		comment.AuthorID, comment.ArtistID, replyTo, comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment, soft-deleted ones included
func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	query := `
		SELECT id, author_id, artist_id, reply_to, text, deleted, created_at, updated_at
		FROM comments
		WHERE id = $1
	`

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

// UpdateText replaces the text and bumps updated_at. Author, artist,
// reply_to and deleted are never touched by this path.
func (r *postgresCommentRepo) UpdateText(ctx context.Context, id int64, text string) (*comments.Comment, error) {
	query := `
		UPDATE comments
		SET text = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, author_id, artist_id, reply_to, text, deleted, created_at, updated_at
	`

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, text, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// SoftDelete marks a comment deleted; the row stays so replies keep a
// valid parent. Idempotent on an already-deleted comment.
func (r *postgresCommentRepo) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE comments
		SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft-delete comment: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return comments.ErrCommentNotFound
	}
	return nil
}

// ListAll returns every comment, soft-deleted ones included
func (r *postgresCommentRepo) ListAll(ctx context.Context) ([]*comments.Comment, error) {
	query := `
		SELECT id, author_id, artist_id, reply_to, text, deleted, created_at, updated_at
		FROM comments
		ORDER BY created_at
	`
	return r.listComments(ctx, query)
}

// ListByArtist returns all comments on an artist in creation order,
// soft-deleted rows included so the thread keeps its placeholders.
func (r *postgresCommentRepo) ListByArtist(ctx context.Context, artistID int64) ([]*comments.Comment, error) {
	query := `
		SELECT id, author_id, artist_id, reply_to, text, deleted, created_at, updated_at
		FROM comments
		WHERE artist_id = $1
		ORDER BY created_at
	`
	return r.listComments(ctx, query, artistID)
}

// ListByAuthor returns all comments by a user
func (r *postgresCommentRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*comments.Comment, error) {
	query := `
		SELECT id, author_id, artist_id, reply_to, text, deleted, created_at, updated_at
		FROM comments
		WHERE author_id = $1
		ORDER BY created_at
	`
	return r.listComments(ctx, query, authorID)
}

// DeleteByArtist hard-deletes an artist's comments, returning the
// removed ids so the caller can purge their votes
func (r *postgresCommentRepo) DeleteByArtist(ctx context.Context, artistID int64) ([]int64, error) {
	query := `DELETE FROM comments WHERE artist_id = $1 RETURNING id`
	return r.deleteReturningIDs(ctx, query, artistID)
}

// DeleteByAuthor hard-deletes a user's comments, returning the removed
// ids so the caller can purge their votes
func (r *postgresCommentRepo) DeleteByAuthor(ctx context.Context, authorID int64) ([]int64, error) {
	query := `DELETE FROM comments WHERE author_id = $1 RETURNING id`
	return r.deleteReturningIDs(ctx, query, authorID)
}

// Exists reports whether a comment row exists, deleted or not.
// Votes on soft-deleted comments stay legal: the placeholder still
// renders in the thread.
func (r *postgresCommentRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check comment existence: %w", err)
	}
	return exists, nil
}

func (r *postgresCommentRepo) listComments(ctx context.Context, query string, args ...interface{}) ([]*comments.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*comments.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return result, nil
}

func (r *postgresCommentRepo) deleteReturningIDs(ctx context.Context, query string, arg int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to delete comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan deleted id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deleted ids: %w", err)
	}
	return ids, nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(s scanner) (*comments.Comment, error) {
	var comment comments.Comment
	var replyTo sql.NullInt64

	err := s.Scan(
		&comment.ID, &comment.AuthorID, &comment.ArtistID, &replyTo,
		&comment.Text, &comment.Deleted, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if replyTo.Valid {
		comment.ReplyTo = &replyTo.Int64
	}
	return &comment, nil
}
