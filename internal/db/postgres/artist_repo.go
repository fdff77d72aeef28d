package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"soundmap/internal/core/artists"
)

type postgresArtistRepo struct {
	db *sql.DB
}

// NewArtistRepository creates a new PostgreSQL artist repository
func NewArtistRepository(db *sql.DB) artists.Repository {
	return &postgresArtistRepo{db: db}
}

// Create inserts a new artist
func (r *postgresArtistRepo) Create(ctx context.Context, artist *artists.Artist) error {
	query := `
		INSERT INTO artists (name, area_id, bio)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		artist.Name, artist.AreaID, artist.Bio,
	).Scan(&artist.ID, &artist.CreatedAt, &artist.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create artist: %w", err)
	}

	return nil
}

// GetByID retrieves an artist by id
func (r *postgresArtistRepo) GetByID(ctx context.Context, id int64) (*artists.Artist, error) {
	query := `
		SELECT id, name, area_id, bio, created_at, updated_at
		FROM artists
		WHERE id = $1
	`

	artist := &artists.Artist{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&artist.ID, &artist.Name, &artist.AreaID, &artist.Bio,
		&artist.CreatedAt, &artist.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, artists.ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return artist, nil
}

// ListByArea returns all artists in an area
func (r *postgresArtistRepo) ListByArea(ctx context.Context, areaID int64) ([]*artists.Artist, error) {
	query := `
		SELECT id, name, area_id, bio, created_at, updated_at
		FROM artists
		WHERE area_id = $1
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*artists.Artist
	for rows.Next() {
		artist := &artists.Artist{}
		err := rows.Scan(
			&artist.ID, &artist.Name, &artist.AreaID, &artist.Bio,
			&artist.CreatedAt, &artist.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		result = append(result, artist)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artists: %w", err)
	}
	return result, nil
}

// Exists reports whether an artist row exists
func (r *postgresArtistRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM artists WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check artist existence: %w", err)
	}
	return exists, nil
}

// Delete hard-removes an artist row. Idempotent; the service runs the
// vote and comment cascades before calling this.
func (r *postgresArtistRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}
	return nil
}
