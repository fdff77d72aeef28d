package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"soundmap/internal/core/identity"
)

type commentService struct {
	repo         Repository
	authorExists ExistsFunc
	artistExists ExistsFunc
	votePurger   VotePurger
	logger       *slog.Logger
}

// NewService creates a comment service. authorExists and artistExists
// validate creation preconditions; pass nil to skip a check (tests
// only). votePurger may be nil when no comment-vote ledger is wired.
func NewService(repo Repository, authorExists, artistExists ExistsFunc, votePurger VotePurger, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:         repo,
		authorExists: authorExists,
		artistExists: artistExists,
		votePurger:   votePurger,
		logger:       logger,
	}
}

// Create validates and stores a new comment. reply_to, when present,
// must resolve to an existing, non-deleted comment on the same artist.
func (s *commentService) Create(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrTextEmpty
	}

	if s.authorExists != nil {
		ok, err := s.authorExists(ctx, req.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("failed to check author: %w", err)
		}
		if !ok {
			return nil, ErrAuthorNotFound
		}
	}

	if s.artistExists != nil {
		ok, err := s.artistExists(ctx, req.ArtistID)
		if err != nil {
			return nil, fmt.Errorf("failed to check artist: %w", err)
		}
		if !ok {
			return nil, ErrArtistNotFound
		}
	}

	if req.ReplyTo != nil {
		parent, err := s.repo.GetByID(ctx, *req.ReplyTo)
		if err != nil {
			if IsNotFound(err) {
				return nil, ErrReplyTargetNotFound
			}
			return nil, fmt.Errorf("failed to check reply target: %w", err)
		}
		if parent.ArtistID != req.ArtistID {
			return nil, ErrReplyWrongArtist
		}
		if parent.Deleted {
			return nil, ErrReplyToDeleted
		}
	}

	comment := &Comment{
		AuthorID: req.AuthorID,
		ArtistID: req.ArtistID,
		ReplyTo:  req.ReplyTo,
		Text:     text,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created",
		"comment", comment.ID,
		"author", comment.AuthorID,
		"artist", comment.ArtistID,
		"reply", req.ReplyTo != nil)

	return comment, nil
}

// Edit replaces a comment's text after the authorization check.
// The check runs before any mutation is attempted.
func (s *commentService) Edit(ctx context.Context, commentID int64, newText string, requester identity.Identity) (*Comment, error) {
	text := strings.TrimSpace(newText)
	if text == "" {
		return nil, ErrTextEmpty
	}

	existing, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if !identity.CanMutateComment(requester, existing.AuthorID) {
		return nil, ErrNotAuthorized
	}
	if existing.Deleted {
		return nil, ErrCommentDeleted
	}

	updated, err := s.repo.UpdateText(ctx, commentID, text)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	s.logger.Info("comment edited",
		"comment", commentID,
		"requester", requester.UserID,
		"admin", requester.IsAdmin)

	return updated, nil
}

// Delete soft-deletes a comment. The row stays so replies keep their
// parent and existing votes on the comment remain queryable.
func (s *commentService) Delete(ctx context.Context, commentID int64, requester identity.Identity) error {
	existing, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !identity.CanMutateComment(requester, existing.AuthorID) {
		return ErrNotAuthorized
	}

	if err := s.repo.SoftDelete(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.Info("comment soft-deleted",
		"comment", commentID,
		"requester", requester.UserID,
		"admin", requester.IsAdmin)

	return nil
}

func (s *commentService) GetByID(ctx context.Context, id int64) (*Comment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *commentService) ListAll(ctx context.Context) ([]*Comment, error) {
	return s.repo.ListAll(ctx)
}

func (s *commentService) ListByArtist(ctx context.Context, artistID int64) ([]*Comment, error) {
	return s.repo.ListByArtist(ctx, artistID)
}

func (s *commentService) ListByAuthor(ctx context.Context, authorID int64) ([]*Comment, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *commentService) ListThreadsByArtist(ctx context.Context, artistID int64) ([]*ThreadNode, error) {
	flat, err := s.repo.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return BuildThreads(flat), nil
}

// DeleteForArtist hard-deletes the artist's comments and purges their
// votes. Part of the artist hard-delete cascade.
func (s *commentService) DeleteForArtist(ctx context.Context, artistID int64) (int64, error) {
	removed, err := s.repo.DeleteByArtist(ctx, artistID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments for artist: %w", err)
	}
	s.purgeVotes(ctx, removed)

	if len(removed) > 0 {
		s.logger.Info("comments cascade-deleted",
			"artist", artistID,
			"count", len(removed))
	}
	return int64(len(removed)), nil
}

// DeleteForAuthor hard-deletes the user's comments and purges their
// votes. Part of the user hard-delete cascade.
func (s *commentService) DeleteForAuthor(ctx context.Context, authorID int64) (int64, error) {
	removed, err := s.repo.DeleteByAuthor(ctx, authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments for user: %w", err)
	}
	s.purgeVotes(ctx, removed)

	if len(removed) > 0 {
		s.logger.Info("comments cascade-deleted",
			"author", authorID,
			"count", len(removed))
	}
	return int64(len(removed)), nil
}

// purgeVotes removes comment votes for hard-deleted comment ids.
// Failures are logged, not propagated: the comments are already gone
// and the purge is idempotent on retry.
func (s *commentService) purgeVotes(ctx context.Context, commentIDs []int64) {
	if s.votePurger == nil {
		return
	}
	for _, id := range commentIDs {
		if _, err := s.votePurger.DeleteForTarget(ctx, id); err != nil {
			s.logger.Error("failed to purge votes for deleted comment",
				"error", err,
				"comment", id)
		}
	}
}
