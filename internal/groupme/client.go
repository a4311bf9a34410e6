// internal/groupme/client.go
package groupme

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public GroupMe v3 API.
const DefaultBaseURL = "https://api.groupme.com/v3"

const accessTokenHeader = "X-Access-Token"

var (
	// ErrUnexpectedStatus is wrapped by StatusError.
	ErrUnexpectedStatus = errors.New("groupme: unexpected status")
	// ErrMissingID is returned when a group or message id is empty.
	ErrMissingID = errors.New("groupme: missing id")
)

// StatusError carries the status GroupMe answered with.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("groupme %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }

var tracer = otel.Tracer("antisell/groupme")

// Client talks to the two GroupMe resources the bot needs: message
// deletion (access token) and bot posting (bot id).
type Client struct {
	BaseURL     string
	accessToken string
	botID       string
	http        *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the traced default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a per-request timeout. Zero keeps the client default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient creates a GroupMe client pointing at baseURL (e.g. https://api.groupme.com/v3).
func NewClient(baseURL, accessToken, botID string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		botID:       botID,
		http:        &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DeleteMessage removes messageID from groupID. Only a 200 counts as
// success; nothing is retried.
func (c *Client) DeleteMessage(ctx context.Context, groupID, messageID string) error {
	if groupID == "" || messageID == "" {
		return ErrMissingID
	}

	ctx, span := tracer.Start(ctx, "GroupMe.DeleteMessage",
		trace.WithAttributes(
			attribute.String("groupme.group_id", groupID),
			attribute.String("groupme.message_id", messageID),
		),
	)
	defer span.End()

	endpoint := fmt.Sprintf("%s/groups/%s/messages/%s",
		c.BaseURL, url.PathEscape(groupID), url.PathEscape(messageID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set(accessTokenHeader, c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return fmt.Errorf("delete message %s: %w", messageID, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		err := &StatusError{Op: "delete", StatusCode: resp.StatusCode, Body: readSnippet(resp.Body)}
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// PostBotMessage posts text to the group as the bot. GroupMe answers 202.
func (c *Client) PostBotMessage(ctx context.Context, text string) error {
	ctx, span := tracer.Start(ctx, "GroupMe.PostBotMessage")
	defer span.End()

	body, err := json.Marshal(BotPost{BotID: c.botID, Text: text})
	if err != nil {
		return fmt.Errorf("encode bot post: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/bots/post", bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("build bot post request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return fmt.Errorf("post bot message: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := &StatusError{Op: "bot post", StatusCode: resp.StatusCode, Body: readSnippet(resp.Body)}
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return err
	}
	zap.S().Debugw("bot message posted", "status", resp.StatusCode)
	return nil
}

func readSnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return strings.TrimSpace(string(b))
}
