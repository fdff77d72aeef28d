package routes

import (
	"github.com/go-chi/chi/v5"

	commenthandlers "soundmap/internal/api/handlers/comments"
	"soundmap/internal/api/middleware"
	"soundmap/internal/core/comments"
)

// RegisterCommentRoutes registers the comment endpoints on the router.
// Reads are public and include soft-deleted rows so clients can render
// placeholders; writes sit behind the identity gate.
func RegisterCommentRoutes(r chi.Router, service comments.Service, auth *middleware.AuthMiddleware) {
	createHandler := commenthandlers.NewCreateCommentHandler(service)
	updateHandler := commenthandlers.NewUpdateCommentHandler(service)
	deleteHandler := commenthandlers.NewDeleteCommentHandler(service)
	getHandler := commenthandlers.NewGetCommentsHandler(service)

	r.Route("/comments", func(r chi.Router) {
		r.Get("/", getHandler.HandleListAll)
		r.Get("/artist/{artistID}", getHandler.HandleListByArtist)
		r.Get("/artist/{artistID}/threads", getHandler.HandleListThreadsByArtist)
		r.Get("/user/{userID}", getHandler.HandleListByAuthor)
		r.Get("/{id}", getHandler.HandleGetByID)

		r.With(auth.RequireAuth).Post("/", createHandler.HandleCreate)
		r.With(auth.RequireAuth).Put("/{id}", updateHandler.HandleUpdate)
		r.With(auth.RequireAuth).Delete("/{id}", deleteHandler.HandleDelete)
	})
}
