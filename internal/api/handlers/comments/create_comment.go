package comments

import (
	"encoding/json"
	"log"
	"net/http"

	"soundmap/internal/api/middleware"
	"soundmap/internal/core/comments"
)

// CreateCommentHandler handles comment creation requests
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new handler for creating comments
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{
		service: service,
	}
}

// HandleCreate creates a comment on an artist, optionally as a reply
// POST /comments
//
// Request body: { "text": "...", "artist": 7, "reply_to"?: 12 }
// Response: 201 with the created comment
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Comments are short text; anything bigger than this is abuse
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var req comments.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}
	req.AuthorID = id.UserID

	comment, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(comment); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
