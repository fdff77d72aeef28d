package routes

import (
	"github.com/go-chi/chi/v5"

	artisthandlers "soundmap/internal/api/handlers/artists"
	"soundmap/internal/api/middleware"
	"soundmap/internal/core/artists"
)

// RegisterArtistRoutes registers the artist directory endpoints
func RegisterArtistRoutes(r chi.Router, service artists.Service, auth *middleware.AuthMiddleware) {
	handler := artisthandlers.NewArtistHandler(service)

	r.Route("/artists", func(r chi.Router) {
		r.Get("/area/{areaID}", handler.HandleListByArea)
		r.Get("/{id}", handler.HandleGetByID)

		// Admin-only writes; deletion additionally demands a password re-entry
		r.With(auth.RequireAuth).Post("/", handler.HandleCreate)
		r.With(auth.RequireAuth).Delete("/{id}", handler.HandleDelete)
	})
}
