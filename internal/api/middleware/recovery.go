package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/cedab23/blueprints/internal/api/response"
)

// Recovery turns a handler panic into a 500 envelope. http.ErrAbortHandler
// is re-raised so net/http can drop the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			slog.Error("handler panicked",
				"panic", rec,
				"stack", string(debug.Stack()),
				"requestId", GetRequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			response.Err(w, http.StatusInternalServerError, "An unexpected error occurred", "internal error")
		}()
		next.ServeHTTP(w, r)
	})
}
