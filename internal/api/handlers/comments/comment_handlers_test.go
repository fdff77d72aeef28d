package comments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundmap/internal/api/middleware"
	"soundmap/internal/core/comments"
	"soundmap/internal/core/identity"
)

// mockCommentService implements comments.Service for testing
type mockCommentService struct {
	createFunc func(ctx context.Context, req comments.CreateCommentRequest) (*comments.Comment, error)
	editFunc   func(ctx context.Context, commentID int64, newText string, requester identity.Identity) (*comments.Comment, error)
	deleteFunc func(ctx context.Context, commentID int64, requester identity.Identity) error
}

func (m *mockCommentService) Create(ctx context.Context, req comments.CreateCommentRequest) (*comments.Comment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &comments.Comment{ID: 1, AuthorID: req.AuthorID, ArtistID: req.ArtistID, Text: req.Text}, nil
}

func (m *mockCommentService) Edit(ctx context.Context, commentID int64, newText string, requester identity.Identity) (*comments.Comment, error) {
	if m.editFunc != nil {
		return m.editFunc(ctx, commentID, newText, requester)
	}
	return &comments.Comment{ID: commentID, Text: newText}, nil
}

func (m *mockCommentService) Delete(ctx context.Context, commentID int64, requester identity.Identity) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, commentID, requester)
	}
	return nil
}

func (m *mockCommentService) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	return nil, comments.ErrCommentNotFound
}

func (m *mockCommentService) ListAll(ctx context.Context) ([]*comments.Comment, error) {
	return nil, nil
}

func (m *mockCommentService) ListByArtist(ctx context.Context, artistID int64) ([]*comments.Comment, error) {
	return nil, nil
}

func (m *mockCommentService) ListByAuthor(ctx context.Context, authorID int64) ([]*comments.Comment, error) {
	return nil, nil
}

func (m *mockCommentService) ListThreadsByArtist(ctx context.Context, artistID int64) ([]*comments.ThreadNode, error) {
	return nil, nil
}

func (m *mockCommentService) DeleteForArtist(ctx context.Context, artistID int64) (int64, error) {
	return 0, nil
}

func (m *mockCommentService) DeleteForAuthor(ctx context.Context, authorID int64) (int64, error) {
	return 0, nil
}

func createRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader(body))
	return req.WithContext(middleware.WithIdentity(req.Context(), identity.Identity{UserID: 42}))
}

func TestHandleCreate_UnknownArtistIsBadRequest(t *testing.T) {
	service := &mockCommentService{
		createFunc: func(ctx context.Context, req comments.CreateCommentRequest) (*comments.Comment, error) {
			return nil, comments.ErrArtistNotFound
		},
	}
	handler := NewCreateCommentHandler(service)

	w := httptest.NewRecorder()
	handler.HandleCreate(w, createRequest(t, `{"text":"great show","artist":999}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "InvalidRequest")
}

func TestHandleCreate_UnknownReplyTargetIsBadRequest(t *testing.T) {
	service := &mockCommentService{
		createFunc: func(ctx context.Context, req comments.CreateCommentRequest) (*comments.Comment, error) {
			return nil, comments.ErrReplyTargetNotFound
		},
	}
	handler := NewCreateCommentHandler(service)

	w := httptest.NewRecorder()
	handler.HandleCreate(w, createRequest(t, `{"text":"same","artist":7,"reply_to":999}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "InvalidRequest")
}

func TestHandleCreate_Success(t *testing.T) {
	handler := NewCreateCommentHandler(&mockCommentService{})

	w := httptest.NewRecorder()
	handler.HandleCreate(w, createRequest(t, `{"text":"great show","artist":7}`))

	require.Equal(t, http.StatusCreated, w.Code)

	var got comments.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got.AuthorID)
	assert.Equal(t, "great show", got.Text)
}

func TestHandleUpdate_MissingCommentIsNotFound(t *testing.T) {
	service := &mockCommentService{
		editFunc: func(ctx context.Context, commentID int64, newText string, requester identity.Identity) (*comments.Comment, error) {
			return nil, comments.ErrCommentNotFound
		},
	}
	handler := NewUpdateCommentHandler(service)

	req := httptest.NewRequest(http.MethodPut, "/comments/999", strings.NewReader(`{"text":"edited"}`))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "999")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.WithIdentity(ctx, identity.Identity{UserID: 42})

	w := httptest.NewRecorder()
	handler.HandleUpdate(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NotFound")
}

func TestHandleDelete_NotAuthorIsForbidden(t *testing.T) {
	service := &mockCommentService{
		deleteFunc: func(ctx context.Context, commentID int64, requester identity.Identity) error {
			return comments.ErrNotAuthorized
		},
	}
	handler := NewDeleteCommentHandler(service)

	req := httptest.NewRequest(http.MethodDelete, "/comments/5", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "5")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.WithIdentity(ctx, identity.Identity{UserID: 42})

	w := httptest.NewRecorder()
	handler.HandleDelete(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
