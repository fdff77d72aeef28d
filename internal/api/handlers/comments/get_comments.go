package comments

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"soundmap/internal/core/comments"
)

// GetCommentsHandler serves the read side: single comments, flat lists
// and the assembled reply threads for an artist page.
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new handler for reading comments
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{
		service: service,
	}
}

// HandleGetByID returns a single comment, deleted or not
// GET /comments/{id}
func (h *GetCommentsHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid comment id")
		return
	}

	comment, err := h.service.GetByID(r.Context(), commentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, comment)
}

// HandleListAll returns every comment, soft-deleted ones included
// GET /comments
func (h *GetCommentsHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, list)
}

// HandleListByArtist returns all comments on an artist as a flat list
// GET /comments/artist/{artistID}
func (h *GetCommentsHandler) HandleListByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid artist id")
		return
	}

	list, err := h.service.ListByArtist(r.Context(), artistID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, list)
}

// HandleListThreadsByArtist returns an artist's comments as a reply
// forest, newest-first at every level
// GET /comments/artist/{artistID}/threads
func (h *GetCommentsHandler) HandleListThreadsByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid artist id")
		return
	}

	threads, err := h.service.ListThreadsByArtist(r.Context(), artistID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, threads)
}

// HandleListByAuthor returns all comments written by a user
// GET /comments/user/{userID}
func (h *GetCommentsHandler) HandleListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return
	}

	list, err := h.service.ListByAuthor(r.Context(), authorID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, list)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
