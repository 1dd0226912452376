package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defensoria/internal/lookup"
	"defensoria/internal/relay/session"
)

type fakeBot struct {
	messages []BotMessage
	err      error

	lastSender  string
	lastMessage string
}

func (f *fakeBot) Send(_ context.Context, sender, message string) ([]BotMessage, error) {
	f.lastSender = sender
	f.lastMessage = message
	return f.messages, f.err
}

func (f *fakeBot) Ping(context.Context) error { return f.err }

func newChatRouter(t *testing.T, bot BotClient, limiter *SlidingWindowLimiter) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(bot, session.NewInMemory(0), limiter, logger, nil)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func postChat(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestChatAggregatesBotMessages(t *testing.T) {
	bot := &fakeBot{messages: []BotMessage{
		{Text: "Hola."},
		{Text: "¿En qué puedo ayudarte?", Buttons: []lookup.Button{{Title: "Consultar", Payload: "/consultar_proceso"}}},
		{Image: "https://example.com/logo.png"},
		{Custom: map[string]any{"kind": "card"}},
	}}
	router := newChatRouter(t, bot, nil)

	rec := postChat(t, router, ChatRequest{Message: "hola", Sender: "web-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Hola. ¿En qué puedo ayudarte?", resp.BotResponse)
	require.Len(t, resp.Buttons, 1)
	assert.Equal(t, "/consultar_proceso", resp.Buttons[0].Payload)
	assert.Equal(t, []string{"https://example.com/logo.png"}, resp.Images)
	require.Len(t, resp.Custom, 1)

	assert.Equal(t, "web-1", bot.lastSender)
	assert.Equal(t, "hola", bot.lastMessage)
}

func TestChatEmptyMessageRejected(t *testing.T) {
	router := newChatRouter(t, &fakeBot{}, nil)

	for _, msg := range []string{"", "   "} {
		rec := postChat(t, router, ChatRequest{Message: msg})
		require.Equal(t, http.StatusBadRequest, rec.Code, "message %q", msg)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "Mensaje vacío", body["error"])
	}
}

func TestChatGeneratesSenderWhenMissing(t *testing.T) {
	bot := &fakeBot{messages: []BotMessage{{Text: "ok"}}}
	router := newChatRouter(t, bot, nil)

	rec := postChat(t, router, ChatRequest{Message: "hola"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, bot.lastSender, "a sender id is generated when the widget sends none")
}

func TestChatUpstreamFailureReturnsBadGateway(t *testing.T) {
	router := newChatRouter(t, &fakeBot{err: errors.New("connection refused")}, nil)

	rec := postChat(t, router, ChatRequest{Message: "hola", Sender: "web-1"})
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body["error"], "Error connecting to bot")
}

func TestChatEmptyBotReplyYieldsEmptyEnvelope(t *testing.T) {
	router := newChatRouter(t, &fakeBot{}, nil)

	rec := postChat(t, router, ChatRequest{Message: "hola", Sender: "web-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	// Empty slices serialize as [], never null: the widget iterates them.
	assert.JSONEq(t, `{"bot_response":"","buttons":[],"images":[],"custom":[]}`, rec.Body.String())
}

func TestChatRateLimited(t *testing.T) {
	bot := &fakeBot{messages: []BotMessage{{Text: "ok"}}}
	router := newChatRouter(t, bot, NewSlidingWindowLimiter(2, time.Minute))

	for i := 0; i < 2; i++ {
		rec := postChat(t, router, ChatRequest{Message: "hola", Sender: "web-1"})
		require.Equal(t, http.StatusOK, rec.Code, "request %d within limit", i+1)
	}

	rec := postChat(t, router, ChatRequest{Message: "hola", Sender: "web-1"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
