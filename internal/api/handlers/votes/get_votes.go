package votes

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"soundmap/internal/core/votes"
)

// GetVotesHandler serves the read side of one vote ledger: the
// aggregate per target and the inverse index per voter.
type GetVotesHandler struct {
	service     votes.Service
	targetParam string
}

// NewGetVotesHandler creates a new get votes handler
func NewGetVotesHandler(service votes.Service, targetParam string) *GetVotesHandler {
	return &GetVotesHandler{
		service:     service,
		targetParam: targetParam,
	}
}

// HandleGetForTarget returns the vote aggregate for one target
// GET /artist/{artistID} or GET /comment/{commentID}
//
// Response: { "upvotes": {"count": n, "users": [...]}, "downvotes": {...} }
func (h *GetVotesHandler) HandleGetForTarget(w http.ResponseWriter, r *http.Request) {
	targetID, err := strconv.ParseInt(chi.URLParam(r, h.targetParam), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid target id")
		return
	}

	tally, err := h.service.GetForTarget(r.Context(), targetID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, tally)
}

// HandleGetForVoter returns every target the user has voted on
// GET /user/{userID}
//
// Response: { "upvotes": [targetID...], "downvotes": [targetID...] }
func (h *GetVotesHandler) HandleGetForVoter(w http.ResponseWriter, r *http.Request) {
	voterID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return
	}

	voterVotes, err := h.service.GetForVoter(r.Context(), voterID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, voterVotes)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
