package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/cedab23/blueprints/internal/api/response"
)

// APIKeyHeader carries the raw API key for protected routes.
const APIKeyHeader = "X-API-Key"

// APIKey returns middleware that requires an X-API-Key header matching the
// given bcrypt hash. An empty hash disables the check.
func APIKey(hash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if hash == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawKey := r.Header.Get(APIKeyHeader)
			if rawKey == "" {
				response.Err(w, http.StatusUnauthorized, "Could not authenticate request", "API key is required")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawKey)); err != nil {
				slog.Debug("rejected API key", "requestId", GetRequestID(r.Context()), "error", err)
				response.Err(w, http.StatusUnauthorized, "Could not authenticate request", "invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
