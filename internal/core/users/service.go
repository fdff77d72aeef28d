package users

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"soundmap/internal/core/identity"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLen = 8

type userService struct {
	repo         Repository
	tokens       TokenIssuer
	comments     CommentCascader
	artistVotes  VoteCascader
	commentVotes VoteCascader
	logger       *slog.Logger
	bcryptCost   int
}

// NewService creates a user service. The cascaders run on account
// deletion; any may be nil when that cleanup is not wired (tests).
func NewService(repo Repository, tokens TokenIssuer, comments CommentCascader, artistVotes, commentVotes VoteCascader, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:         repo,
		tokens:       tokens,
		comments:     comments,
		artistVotes:  artistVotes,
		commentVotes: commentVotes,
		logger:       logger,
		bcryptCost:   bcrypt.DefaultCost,
	}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrUsernameEmpty
	}
	if len(req.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user", user.ID)
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if IsNotFound(err) {
			// Same error as a wrong password so login failures don't
			// reveal which emails are registered
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(identity.Identity{UserID: user.ID, IsAdmin: user.IsAdmin})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user logged in", "user", user.ID)
	return &LoginResponse{Token: token, User: user}, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// VerifyPassword re-checks the caller's own password for step-up
// confirmation. Failure is reported as ErrInvalidCredentials.
func (s *userService) VerifyPassword(ctx context.Context, userID int64, password string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Delete hard-removes an account and cascades the user's comments and
// votes. Unlike comment deletion this is a data-lifecycle action: the
// row goes away, so nothing may keep referencing it.
func (s *userService) Delete(ctx context.Context, userID int64, requester identity.Identity) error {
	if requester.UserID != userID && !requester.IsAdmin {
		return ErrNotAuthorized
	}

	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return err
	}

	if s.comments != nil {
		if _, err := s.comments.DeleteForAuthor(ctx, userID); err != nil {
			return fmt.Errorf("failed to cascade comments: %w", err)
		}
	}
	if s.artistVotes != nil {
		if _, err := s.artistVotes.DeleteForVoter(ctx, userID); err != nil {
			return fmt.Errorf("failed to cascade artist votes: %w", err)
		}
	}
	if s.commentVotes != nil {
		if _, err := s.commentVotes.DeleteForVoter(ctx, userID); err != nil {
			return fmt.Errorf("failed to cascade comment votes: %w", err)
		}
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted",
		"user", userID,
		"requester", requester.UserID,
		"admin", requester.IsAdmin)
	return nil
}
