package routes

import (
	"github.com/go-chi/chi/v5"

	votehandlers "soundmap/internal/api/handlers/votes"
	"soundmap/internal/api/middleware"
	"soundmap/internal/core/votes"
)

// RegisterArtistVoteRoutes registers the artist vote ledger endpoints
func RegisterArtistVoteRoutes(r chi.Router, service votes.Service, auth *middleware.AuthMiddleware) {
	castHandler := votehandlers.NewCastVoteHandler(service, "artistID")
	getHandler := votehandlers.NewGetVotesHandler(service, "artistID")

	r.Route("/artist-votes", func(r chi.Router) {
		// Casting toggles: same direction twice retracts the vote
		r.With(auth.RequireAuth).Post("/{artistID}/{voteType}", castHandler.HandleCast)

		// Reads are public
		r.Get("/artist/{artistID}", getHandler.HandleGetForTarget)
		r.Get("/user/{userID}", getHandler.HandleGetForVoter)
	})
}

// RegisterCommentVoteRoutes registers the comment vote ledger endpoints
func RegisterCommentVoteRoutes(r chi.Router, service votes.Service, auth *middleware.AuthMiddleware) {
	castHandler := votehandlers.NewCastVoteHandler(service, "commentID")
	getHandler := votehandlers.NewGetVotesHandler(service, "commentID")

	r.Route("/comment-votes", func(r chi.Router) {
		r.With(auth.RequireAuth).Post("/{commentID}/{voteType}", castHandler.HandleCast)

		r.Get("/comment/{commentID}", getHandler.HandleGetForTarget)
		r.Get("/user/{userID}", getHandler.HandleGetForVoter)
	})
}
