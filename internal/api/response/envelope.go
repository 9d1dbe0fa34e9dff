package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the standard API response wrapper. Data is omitted when nil.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorData is the payload carried by error envelopes.
type ErrorData struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON writes env as a JSON response with the given status code. The
// envelope code always mirrors the HTTP status.
func JSON(w http.ResponseWriter, status int, env Envelope) {
	env.Code = status
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success writes a successful JSON response. A nil data yields an envelope
// without a data field.
func Success(w http.ResponseWriter, status int, data any, message string) {
	JSON(w, status, Envelope{
		Message: message,
		Data:    data,
	})
}

// Err writes an error JSON response whose data carries the failure reason.
func Err(w http.ResponseWriter, status int, message string, reason string) {
	JSON(w, status, Envelope{
		Message: message,
		Data:    ErrorData{Error: reason},
	})
}

// ErrWithDetails writes an error JSON response with additional details.
func ErrWithDetails(w http.ResponseWriter, status int, message string, reason string, details any) {
	JSON(w, status, Envelope{
		Message: message,
		Data:    ErrorData{Error: reason, Details: details},
	})
}
