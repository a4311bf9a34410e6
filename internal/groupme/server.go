// internal/groupme/server.go
package groupme

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// MockServer is an in-process stand-in for the GroupMe API. It serves
// message deletion and bot posting, and records what it was asked to do.
type MockServer struct {
	*http.Server

	mu           sync.Mutex
	deleteStatus int
	deleted      []DeletedMessage
	posts        []BotPost
}

// DeletedMessage is one accepted DELETE call.
type DeletedMessage struct {
	GroupID     string
	MessageID   string
	AccessToken string
}

// StartMockServer starts the fake API on addr (e.g. ":0").
// It returns the server and the actual listening address.
func StartMockServer(addr string) (*MockServer, string, error) {
	ms := &MockServer{deleteStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /groups/{group}/messages/{message}", ms.handleDelete)
	mux.HandleFunc("POST /bots/post", ms.handleBotPost)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", err
	}
	ms.Server = &http.Server{Handler: mux}
	go func() {
		zap.S().Infow("mock groupme api listening", "address", ln.Addr().String())
		if err := ms.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Errorw("mock groupme api failed", "error", err)
		}
	}()

	return ms, ln.Addr().String(), nil
}

// SetDeleteStatus makes subsequent deletions answer with status.
func (ms *MockServer) SetDeleteStatus(status int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.deleteStatus = status
}

// Deleted returns the deletions accepted so far.
func (ms *MockServer) Deleted() []DeletedMessage {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]DeletedMessage(nil), ms.deleted...)
}

// Posts returns the bot posts received so far.
func (ms *MockServer) Posts() []BotPost {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]BotPost(nil), ms.posts...)
}

func (ms *MockServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(accessTokenHeader)
	if strings.TrimSpace(token) == "" {
		http.Error(w, `{"meta":{"code":401,"errors":["unauthorized"]}}`, http.StatusUnauthorized)
		return
	}

	ms.mu.Lock()
	status := ms.deleteStatus
	if status == http.StatusOK {
		ms.deleted = append(ms.deleted, DeletedMessage{
			GroupID:     r.PathValue("group"),
			MessageID:   r.PathValue("message"),
			AccessToken: token,
		})
	}
	ms.mu.Unlock()

	w.WriteHeader(status)
}

func (ms *MockServer) handleBotPost(w http.ResponseWriter, r *http.Request) {
	var post BotPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if post.BotID == "" {
		http.Error(w, "bot_id required", http.StatusBadRequest)
		return
	}

	ms.mu.Lock()
	ms.posts = append(ms.posts, post)
	ms.mu.Unlock()

	w.WriteHeader(http.StatusAccepted)
}
