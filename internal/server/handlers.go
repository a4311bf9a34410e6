package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ffaiyaz23/antisell/internal/config"
	"github.com/ffaiyaz23/antisell/internal/groupme"
	"github.com/ffaiyaz23/antisell/internal/logger"
	"github.com/ffaiyaz23/antisell/internal/moderation"
)

const maxBodyBytes = 1 << 20

// Moderator is the part of moderation.Service the HTTP layer needs.
type Moderator interface {
	Handle(ctx context.Context, msg *groupme.Message) moderation.Result
	DeleteByID(ctx context.Context, messageID string) error
	GroupID() string
	BannedWords() []string
}

var validate = validator.New()

// HandleWebhook receives GroupMe callbacks. It answers 200 on every
// normal path, including failed deletions; only an unreadable or
// malformed body yields 500.
func HandleWebhook(mod Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			logger.FromContext(r.Context()).Errorw("error reading webhook body", "error", err)
			respondJSON(w, http.StatusInternalServerError, WebhookResponse{Status: StatusError, Message: err.Error()})
			return
		}
		if len(bytes.TrimSpace(raw)) == 0 {
			respondJSON(w, http.StatusOK, WebhookResponse{Status: StatusIgnored})
			return
		}

		var msg *groupme.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.FromContext(r.Context()).Errorw("error processing webhook", "error", err)
			respondJSON(w, http.StatusInternalServerError, WebhookResponse{Status: StatusError, Message: err.Error()})
			return
		}
		if msg == nil || msg.IsEmpty() {
			respondJSON(w, http.StatusOK, WebhookResponse{Status: StatusIgnored})
			return
		}

		res := mod.Handle(r.Context(), msg)
		if res.Outcome == moderation.OutcomeIgnored {
			respondJSON(w, http.StatusOK, WebhookResponse{Status: StatusIgnored})
			return
		}
		respondJSON(w, http.StatusOK, WebhookResponse{Status: StatusOK})
	}
}

// HandleHealth reports liveness and which credentials are configured.
func HandleHealth(presence config.Presence) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{
			Status: "healthy",
			Bot:    "anti-sell bot running",
			Config: presence,
		})
	}
}

// HandleStatus shows the monitored group and banned words.
func HandleStatus(mod Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, StatusResponse{
			Status:      "running",
			GroupID:     mod.GroupID(),
			BannedWords: mod.BannedWords(),
		})
	}
}

// HandleTestDelete deletes a message by id, for debugging the access token.
func HandleTestDelete(mod Moderator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TestDeleteRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := mod.DeleteByID(r.Context(), req.MessageID); err != nil {
			respondJSON(w, http.StatusOK, TestDeleteResponse{Status: StatusFailed})
			return
		}
		respondJSON(w, http.StatusOK, TestDeleteResponse{Status: StatusDeleted})
	}
}
