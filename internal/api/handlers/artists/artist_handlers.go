package artists

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"soundmap/internal/api/middleware"
	"soundmap/internal/core/artists"
)

// ArtistHandler serves the lean artist directory
type ArtistHandler struct {
	service artists.Service
}

// NewArtistHandler creates a new artist handler
func NewArtistHandler(service artists.Service) *ArtistHandler {
	return &ArtistHandler{
		service: service,
	}
}

// HandleCreate adds an artist to the directory
// POST /artists
//
// Admin only. Request body: { "name": "...", "area": 3, "bio"?: "..." }
func (h *ArtistHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var req artists.CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	artist, err := h.service.Create(r.Context(), req, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(artist); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// HandleGetByID returns a single artist
// GET /artists/{id}
func (h *ArtistHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid artist id")
		return
	}

	artist, err := h.service.GetByID(r.Context(), artistID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, artist)
}

// HandleListByArea returns all artists in an area, sorted by name
// GET /artists/area/{areaID}
func (h *ArtistHandler) HandleListByArea(w http.ResponseWriter, r *http.Request) {
	areaID, err := strconv.ParseInt(chi.URLParam(r, "areaID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid area id")
		return
	}

	list, err := h.service.ListByArea(r.Context(), areaID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, list)
}

// DeleteArtistInput carries the step-up password confirmation
type DeleteArtistInput struct {
	Password string `json:"password"`
}

// HandleDelete removes an artist with its votes and comments
// DELETE /artists/{id}
//
// Admin only, and the admin must re-enter their own password. A stolen
// token alone is not enough to wipe an artist page.
func (h *ArtistHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	artistID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid artist id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input DeleteArtistInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), artistID, id, input.Password); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"message": "Artist deleted",
	}); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
