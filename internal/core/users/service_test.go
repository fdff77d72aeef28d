package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"soundmap/internal/core/identity"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCommentCascader struct {
	mock.Mock
}

func (m *mockCommentCascader) DeleteForAuthor(ctx context.Context, authorID int64) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

type mockVoteCascader struct {
	mock.Mock
}

func (m *mockVoteCascader) DeleteForVoter(ctx context.Context, voterID int64) (int64, error) {
	args := m.Called(ctx, voterID)
	return args.Get(0).(int64), args.Error(1)
}

type staticTokenIssuer struct{ token string }

func (s staticTokenIssuer) Issue(identity.Identity) (string, error) { return s.token, nil }

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := NewService(new(mockUserRepository), staticTokenIssuer{}, nil, nil, nil, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "not-an-email", Username: "sam", Password: "longenough",
	})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := NewService(new(mockUserRepository), staticTokenIssuer{}, nil, nil, nil, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "sam@example.com", Username: "sam", Password: "short",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegister_NormalizesEmailAndHashes(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Email == "sam@example.com" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "longenough"
	})).Return(nil)

	svc := NewService(repo, staticTokenIssuer{}, nil, nil, nil, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "  Sam@Example.COM ", Username: "sam", Password: "longenough",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByEmail", mock.Anything, "sam@example.com").Return(&User{
		ID: 1, Email: "sam@example.com", PasswordHash: hashOf(t, "correct-horse"),
	}, nil)

	svc := NewService(repo, staticTokenIssuer{}, nil, nil, nil, nil)

	_, err := svc.Login(context.Background(), "sam@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, ErrUserNotFound)

	svc := NewService(repo, staticTokenIssuer{}, nil, nil, nil, nil)

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_IssuesToken(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByEmail", mock.Anything, "sam@example.com").Return(&User{
		ID: 1, Email: "sam@example.com", IsAdmin: true, PasswordHash: hashOf(t, "correct-horse"),
	}, nil)

	svc := NewService(repo, staticTokenIssuer{token: "tok-123"}, nil, nil, nil, nil)

	resp, err := svc.Login(context.Background(), "Sam@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestVerifyPassword_StepUp(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&User{
		ID: 1, PasswordHash: hashOf(t, "correct-horse"),
	}, nil)

	svc := NewService(repo, staticTokenIssuer{}, nil, nil, nil, nil)

	require.NoError(t, svc.VerifyPassword(context.Background(), 1, "correct-horse"))
	assert.ErrorIs(t, svc.VerifyPassword(context.Background(), 1, "nope"), ErrInvalidCredentials)
}

func TestDelete_OtherUserForbidden(t *testing.T) {
	svc := NewService(new(mockUserRepository), staticTokenIssuer{}, nil, nil, nil, nil)

	err := svc.Delete(context.Background(), 5, identity.Identity{UserID: 1})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestDelete_CascadesCommentsAndVotes(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&User{ID: 5}, nil)
	repo.On("Delete", mock.Anything, int64(5)).Return(nil)

	comments := new(mockCommentCascader)
	comments.On("DeleteForAuthor", mock.Anything, int64(5)).Return(int64(2), nil)

	artistVotes := new(mockVoteCascader)
	artistVotes.On("DeleteForVoter", mock.Anything, int64(5)).Return(int64(3), nil)

	commentVotes := new(mockVoteCascader)
	commentVotes.On("DeleteForVoter", mock.Anything, int64(5)).Return(int64(1), nil)

	svc := NewService(repo, staticTokenIssuer{}, comments, artistVotes, commentVotes, nil)

	err := svc.Delete(context.Background(), 5, identity.Identity{UserID: 1, IsAdmin: true})
	require.NoError(t, err)
	repo.AssertExpectations(t)
	comments.AssertExpectations(t)
	artistVotes.AssertExpectations(t)
	commentVotes.AssertExpectations(t)
}

func TestDelete_SelfAllowed(t *testing.T) {
	repo := new(mockUserRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&User{ID: 5}, nil)
	repo.On("Delete", mock.Anything, int64(5)).Return(nil)

	svc := NewService(repo, staticTokenIssuer{}, nil, nil, nil, nil)

	err := svc.Delete(context.Background(), 5, identity.Identity{UserID: 5})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
