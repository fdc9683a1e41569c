package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/jeremyjsx/journal/internal/auth"
)

// RequireSession guards the write path. The check runs before the handler
// touches any storage; an unauthenticated create never reaches a backend.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.IsAuthenticated(r) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
