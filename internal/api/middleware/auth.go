package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"soundmap/internal/core/identity"
)

// AuthHeader is the header carrying the bearer token on protected routes
const AuthHeader = "x-auth-token"

type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware resolves the x-auth-token header to an Identity and
// injects it into the request context. The identity gate: handlers
// downstream never see an unauthenticated request on protected routes.
type AuthMiddleware struct {
	codec *identity.TokenCodec
}

// NewAuthMiddleware creates middleware verifying tokens with the codec
func NewAuthMiddleware(codec *identity.TokenCodec) *AuthMiddleware {
	return &AuthMiddleware{codec: codec}
}

// RequireAuth rejects requests without a valid token with 401 and
// injects the caller's Identity into context otherwise
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(AuthHeader))
		if token == "" {
			writeAuthError(w, "Missing "+AuthHeader+" header")
			return
		}

		id, err := m.codec.Verify(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// WithIdentity returns a context carrying the identity. Used by
// RequireAuth and by handler tests that bypass the middleware.
func WithIdentity(ctx context.Context, id identity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity returns the authenticated caller injected by RequireAuth.
// ok is false on routes that did not pass through the middleware.
func GetIdentity(r *http.Request) (identity.Identity, bool) {
	id, ok := r.Context().Value(identityKey).(identity.Identity)
	return id, ok
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "Unauthorized",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
