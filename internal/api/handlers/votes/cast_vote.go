package votes

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"soundmap/internal/api/middleware"
	"soundmap/internal/core/votes"
)

// CastVoteHandler toggles a vote on a single target. One instance is
// mounted per ledger (artist votes, comment votes); targetParam names
// the URL parameter carrying the target id on that ledger's routes.
type CastVoteHandler struct {
	service     votes.Service
	targetParam string
}

// NewCastVoteHandler creates a new cast vote handler
func NewCastVoteHandler(service votes.Service, targetParam string) *CastVoteHandler {
	return &CastVoteHandler{
		service:     service,
		targetParam: targetParam,
	}
}

// HandleCast casts, flips, or retracts the caller's vote
// POST /{targetID}/{voteType}
//
// Response: { "message": "Vote added" | "Vote updated" | "Vote removed", "vote"?: {...} }
func (h *CastVoteHandler) HandleCast(w http.ResponseWriter, r *http.Request) {
	targetID, err := strconv.ParseInt(chi.URLParam(r, h.targetParam), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid target id")
		return
	}

	value := votes.Value(chi.URLParam(r, "voteType"))
	if !value.Valid() {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "voteType must be 'up' or 'down'")
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	result, err := h.service.Cast(r.Context(), id.UserID, targetID, value)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response := map[string]interface{}{
		"message": castMessage(result.Outcome),
	}
	if result.Vote != nil {
		response["vote"] = result.Vote
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func castMessage(outcome votes.Outcome) string {
	switch outcome {
	case votes.OutcomeRemoved:
		return "Vote removed"
	case votes.OutcomeUpdated:
		return "Vote updated"
	default:
		return "Vote added"
	}
}
