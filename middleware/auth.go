// ABOUTME: Bearer token authentication middleware
// ABOUTME: Validates a static API token with constant-time comparison

package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// Auth returns middleware that requires a bearer token matching the
// configured API token. An empty token disables authentication entirely
// and all requests pass through.
func Auth(apiToken string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			// Disabled mode: no token configured
			if apiToken == "" {
				next(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				slog.Warn("Missing bearer token", "path", r.URL.Path)
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeJSONError(w, "Missing or malformed Authorization header", http.StatusUnauthorized)
				return
			}

			// Constant-time comparison so timing does not leak token bytes
			if subtle.ConstantTimeCompare([]byte(token), []byte(apiToken)) != 1 {
				slog.Warn("Invalid bearer token", "path", r.URL.Path)
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeJSONError(w, "Invalid API token", http.StatusUnauthorized)
				return
			}

			next(w, r)
		}
	}
}
