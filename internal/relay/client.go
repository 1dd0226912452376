// Package relay bridges the public chat widget to the dialogue backend:
// it forwards user messages to the backend's REST webhook and flattens the
// returned message list into a single widget-friendly payload.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"defensoria/internal/lookup"
)

// BotMessage is one message returned by the dialogue backend.
type BotMessage struct {
	RecipientID string          `json:"recipient_id,omitempty"`
	Text        string          `json:"text,omitempty"`
	Buttons     []lookup.Button `json:"buttons,omitempty"`
	Image       string          `json:"image,omitempty"`
	Custom      map[string]any  `json:"custom,omitempty"`
}

// BotClient talks to the dialogue backend.
type BotClient interface {
	Send(ctx context.Context, sender, message string) ([]BotMessage, error)
	Ping(ctx context.Context) error
}

// Client is the HTTP implementation of BotClient.
type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a client for the backend's REST webhook. The timeout
// bounds the whole exchange; the relay performs no retries.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

// Send posts the user message and decodes the backend's message list.
func (c *Client) Send(ctx context.Context, sender, message string) ([]BotMessage, error) {
	payload, err := json.Marshal(map[string]string{
		"sender":  sender,
		"message": message,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal bot request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build bot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post to bot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("bot returned status %d", resp.StatusCode)
	}

	var messages []BotMessage
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return nil, fmt.Errorf("decode bot response: %w", err)
	}
	return messages, nil
}

// Ping checks the backend is reachable. The webhook only accepts POST, so
// any HTTP response at all (even 405) counts as alive; only transport
// failures are reported.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bot unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}
