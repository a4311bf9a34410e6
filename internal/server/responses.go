package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ffaiyaz23/antisell/internal/config"
)

// Webhook status values. GroupMe only looks at the HTTP status; the
// body is for humans and logs.
const (
	StatusOK      = "ok"
	StatusIgnored = "ignored"
	StatusError   = "error"
	StatusDeleted = "deleted"
	StatusFailed  = "failed"
)

// WebhookResponse is returned by POST /webhook.
type WebhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string          `json:"status"`
	Bot    string          `json:"bot"`
	Config config.Presence `json:"config"`
}

// StatusResponse is returned by GET /.
type StatusResponse struct {
	Status      string   `json:"status"`
	GroupID     string   `json:"group_id"`
	BannedWords []string `json:"banned_words"`
}

// TestDeleteRequest is the body of POST /test.
type TestDeleteRequest struct {
	MessageID string `json:"message_id" validate:"required"`
}

// TestDeleteResponse is returned by POST /test.
type TestDeleteResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents a client error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.S().Errorw("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
