package artists

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"soundmap/internal/core/identity"
)

type artistService struct {
	repo      Repository
	passwords PasswordVerifier
	comments  CommentCascader
	votes     VoteCascader
	logger    *slog.Logger
}

// NewService creates an artist service. passwords backs the step-up
// check on deletion; the cascaders clean up votes and comments.
func NewService(repo Repository, passwords PasswordVerifier, comments CommentCascader, votes VoteCascader, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &artistService{
		repo:      repo,
		passwords: passwords,
		comments:  comments,
		votes:     votes,
		logger:    logger,
	}
}

func (s *artistService) Create(ctx context.Context, req CreateArtistRequest, requester identity.Identity) (*Artist, error) {
	if !requester.IsAdmin {
		return nil, ErrAdminRequired
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameEmpty
	}

	artist := &Artist{
		Name:   name,
		Bio:    strings.TrimSpace(req.Bio),
		AreaID: req.AreaID,
	}
	if err := s.repo.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	s.logger.Info("artist created",
		"artist", artist.ID,
		"area", artist.AreaID,
		"requester", requester.UserID)
	return artist, nil
}

func (s *artistService) GetByID(ctx context.Context, id int64) (*Artist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *artistService) ListByArea(ctx context.Context, areaID int64) ([]*Artist, error) {
	return s.repo.ListByArea(ctx, areaID)
}

// Delete hard-removes an artist after the step-up confirmation, then
// cascades: votes on the artist, comments on the artist (which in turn
// remove those comments' votes). Explicit calls, no registry.
func (s *artistService) Delete(ctx context.Context, artistID int64, requester identity.Identity, password string) error {
	if !requester.IsAdmin {
		return ErrAdminRequired
	}
	if s.passwords != nil {
		if err := s.passwords.VerifyPassword(ctx, requester.UserID, password); err != nil {
			return ErrPasswordConfirmation
		}
	}

	if _, err := s.repo.GetByID(ctx, artistID); err != nil {
		return err
	}

	if s.votes != nil {
		if _, err := s.votes.DeleteForTarget(ctx, artistID); err != nil {
			return fmt.Errorf("failed to cascade artist votes: %w", err)
		}
	}
	if s.comments != nil {
		if _, err := s.comments.DeleteForArtist(ctx, artistID); err != nil {
			return fmt.Errorf("failed to cascade comments: %w", err)
		}
	}

	if err := s.repo.Delete(ctx, artistID); err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	s.logger.Info("artist deleted",
		"artist", artistID,
		"requester", requester.UserID)
	return nil
}
