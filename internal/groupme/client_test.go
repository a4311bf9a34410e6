package groupme

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_DeleteMessage_Request(t *testing.T) {
	var gotMethod, gotPath, gotToken string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Access-Token")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/", "secret", "bot")
	require.NoError(t, c.DeleteMessage(context.Background(), "123", "456"))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/groups/123/messages/456", gotPath)
	assert.Equal(t, "secret", gotToken)
}

func TestClient_DeleteMessage_Statuses(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"ok", http.StatusOK, false},
		{"no content is not ok", http.StatusNoContent, true},
		{"not found", http.StatusNotFound, true},
		{"forbidden", http.StatusForbidden, true},
		{"server error", http.StatusInternalServerError, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer ts.Close()

			err := NewClient(ts.URL, "t", "b").DeleteMessage(context.Background(), "g", "m")
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrUnexpectedStatus)
		})
	}
}

func TestClient_DeleteMessage_MissingID(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "t", "b")
	assert.ErrorIs(t, c.DeleteMessage(context.Background(), "", "m"), ErrMissingID)
	assert.ErrorIs(t, c.DeleteMessage(context.Background(), "g", ""), ErrMissingID)
	assert.False(t, called)
}

func TestClient_DeleteMessage_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	err := NewClient(url, "t", "b").DeleteMessage(context.Background(), "g", "m")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnexpectedStatus))
}

func TestClient_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "t", "b", WithTimeout(20*time.Millisecond))
	assert.Error(t, c.DeleteMessage(context.Background(), "g", "m"))
}

func TestClient_PostBotMessage(t *testing.T) {
	var got BotPost
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bots/post", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	require.NoError(t, NewClient(ts.URL, "t", "bot-9").PostBotMessage(context.Background(), "hi"))
	assert.Equal(t, BotPost{BotID: "bot-9", Text: "hi"}, got)
}

func TestClient_PostBotMessage_Failure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad bot"))
	}))
	defer ts.Close()

	err := NewClient(ts.URL, "t", "b").PostBotMessage(context.Background(), "hi")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "bad bot", se.Body)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewClient("", "t", "b").BaseURL)
}

func TestMessage_IsEmpty(t *testing.T) {
	var m Message
	require.NoError(t, json.Unmarshal([]byte(`{}`), &m))
	assert.True(t, m.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`{"text":"hi"}`), &m))
	assert.False(t, m.IsEmpty())
}
