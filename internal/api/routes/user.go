package routes

import (
	"github.com/go-chi/chi/v5"

	userhandlers "soundmap/internal/api/handlers/users"
	"soundmap/internal/api/middleware"
	"soundmap/internal/core/users"
)

// RegisterUserRoutes registers the account endpoints on the router
func RegisterUserRoutes(r chi.Router, service users.Service, auth *middleware.AuthMiddleware) {
	handler := userhandlers.NewUserHandler(service)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", handler.HandleRegister)
		r.Post("/login", handler.HandleLogin)
		r.Get("/{id}", handler.HandleGetByID)

		r.With(auth.RequireAuth).Delete("/{id}", handler.HandleDelete)
	})
}
