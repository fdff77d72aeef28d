package votes

import (
	"context"
	"fmt"
	"log/slog"
)

// voteService implements the Service interface for one target kind
type voteService struct {
	repo         Repository
	voterExists  ExistsFunc
	targetExists ExistsFunc
	logger       *slog.Logger
	kind         string // "artist" or "comment", for logging
}

// NewService creates a vote service over one ledger. voterExists and
// targetExists validate the cast preconditions; pass nil to skip a
// check (tests only).
func NewService(kind string, repo Repository, voterExists, targetExists ExistsFunc, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &voteService{
		repo:         repo,
		voterExists:  voterExists,
		targetExists: targetExists,
		logger:       logger,
		kind:         kind,
	}
}

// Cast records a vote with toggle semantics:
// - No existing vote → insert with the given value
// - Existing vote with same value → delete (toggle off)
// - Existing vote with different value → flip in place
func (s *voteService) Cast(ctx context.Context, voterID, targetID int64, value Value) (*CastResult, error) {
	if !value.Valid() {
		return nil, ErrInvalidValue
	}

	if s.voterExists != nil {
		ok, err := s.voterExists(ctx, voterID)
		if err != nil {
			return nil, fmt.Errorf("failed to check voter: %w", err)
		}
		if !ok {
			return nil, ErrVoterNotFound
		}
	}

	if s.targetExists != nil {
		ok, err := s.targetExists(ctx, targetID)
		if err != nil {
			return nil, fmt.Errorf("failed to check target: %w", err)
		}
		if !ok {
			return nil, ErrTargetNotFound
		}
	}

	result, err := s.repo.Toggle(ctx, voterID, targetID, value)
	if err != nil {
		s.logger.Error("vote toggle failed",
			"error", err,
			"kind", s.kind,
			"voter", voterID,
			"target", targetID,
			"value", value)
		return nil, fmt.Errorf("failed to cast vote: %w", err)
	}

	s.logger.Info("vote cast",
		"kind", s.kind,
		"voter", voterID,
		"target", targetID,
		"value", value,
		"outcome", result.Outcome)

	return result, nil
}

// GetForTarget aggregates votes on a target by direction, with full
// voter-id lists so the caller can test membership.
func (s *voteService) GetForTarget(ctx context.Context, targetID int64) (*TargetVotes, error) {
	all, err := s.repo.ListByTarget(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes for target: %w", err)
	}

	result := &TargetVotes{
		Upvotes:   VoteTally{Users: []int64{}},
		Downvotes: VoteTally{Users: []int64{}},
	}
	for _, v := range all {
		switch v.Value {
		case ValueUp:
			result.Upvotes.Count++
			result.Upvotes.Users = append(result.Upvotes.Users, v.VoterID)
		case ValueDown:
			result.Downvotes.Count++
			result.Downvotes.Users = append(result.Downvotes.Users, v.VoterID)
		}
	}
	return result, nil
}

// GetForVoter returns the inverse index: all targets the voter has
// opined on, split by direction.
func (s *voteService) GetForVoter(ctx context.Context, voterID int64) (*VoterVotes, error) {
	all, err := s.repo.ListByVoter(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes for voter: %w", err)
	}

	result := &VoterVotes{
		Upvotes:   []int64{},
		Downvotes: []int64{},
	}
	for _, v := range all {
		switch v.Value {
		case ValueUp:
			result.Upvotes = append(result.Upvotes, v.TargetID)
		case ValueDown:
			result.Downvotes = append(result.Downvotes, v.TargetID)
		}
	}
	return result, nil
}

// DeleteForTarget removes every vote on a target. Called from the
// owning entity's hard-delete path.
func (s *voteService) DeleteForTarget(ctx context.Context, targetID int64) (int64, error) {
	n, err := s.repo.DeleteByTarget(ctx, targetID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete votes for target: %w", err)
	}
	if n > 0 {
		s.logger.Info("votes cascade-deleted",
			"kind", s.kind,
			"target", targetID,
			"count", n)
	}
	return n, nil
}

// DeleteForVoter removes every vote by a user. Called from the user
// account hard-delete path.
func (s *voteService) DeleteForVoter(ctx context.Context, voterID int64) (int64, error) {
	n, err := s.repo.DeleteByVoter(ctx, voterID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete votes for voter: %w", err)
	}
	if n > 0 {
		s.logger.Info("votes cascade-deleted",
			"kind", s.kind,
			"voter", voterID,
			"count", n)
	}
	return n, nil
}
