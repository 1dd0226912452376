package relay

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"defensoria/internal/lookup"
	"defensoria/internal/relay/metrics"
	"defensoria/internal/relay/session"
	dErrors "defensoria/pkg/domain-errors"
	"defensoria/pkg/platform/httputil"
	"defensoria/pkg/requestcontext"
)

// ChatRequest is the widget's message envelope.
type ChatRequest struct {
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// ChatResponse flattens the backend's message list for the widget.
type ChatResponse struct {
	BotResponse string           `json:"bot_response"`
	Buttons     []lookup.Button  `json:"buttons"`
	Images      []string         `json:"images"`
	Custom      []map[string]any `json:"custom"`
}

// Handler exposes the public chat endpoint.
type Handler struct {
	bot      BotClient
	sessions session.Store
	limiter  *SlidingWindowLimiter
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewHandler constructs the relay handler with its dependencies.
func NewHandler(bot BotClient, sessions session.Store, limiter *SlidingWindowLimiter, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		bot:      bot,
		sessions: sessions,
		limiter:  limiter,
		logger:   logger,
		metrics:  m,
	}
}

// Register mounts the chat endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/chat", h.HandleChat)
}

// HandleChat relays one widget message to the dialogue backend and flattens
// the reply. The response envelope ("bot_response", "buttons", "images",
// "custom" and the bare "error" key) is the widget's wire contract.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if h.limiter != nil && !h.limiter.Allow(requestcontext.ClientIP(ctx)) {
		h.metrics.IncrementChatRequests("rate_limited")
		httputil.WriteError(w, dErrors.New(dErrors.CodeTooManyRequests, "demasiadas solicitudes, espera un momento"))
		return
	}

	req, ok := httputil.DecodeJSON[ChatRequest](w, r, h.logger)
	if !ok {
		h.metrics.IncrementChatRequests("empty_message")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		h.metrics.IncrementChatRequests("empty_message")
		httputil.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "Mensaje vacío"})
		return
	}

	sender := strings.TrimSpace(req.Sender)
	if sender == "" {
		sender = uuid.NewString()
	}

	if err := h.sessions.Touch(ctx, sender, time.Now()); err != nil {
		// Session tracking is best-effort; the chat must not fail over it.
		h.logger.WarnContext(ctx, "session touch failed", "error", err, "request_id", requestID)
	}

	start := time.Now()
	messages, err := h.bot.Send(ctx, sender, message)
	h.metrics.ObserveBotLatency(time.Since(start))
	if err != nil {
		h.metrics.IncrementChatRequests("upstream_error")
		h.logger.ErrorContext(ctx, "dialogue backend call failed",
			"error", err,
			"request_id", requestID,
			"sender_id", sender,
		)
		httputil.WriteJSON(w, http.StatusBadGateway, map[string]string{
			"error": "Error connecting to bot: " + err.Error(),
		})
		return
	}

	resp := ChatResponse{
		Buttons: []lookup.Button{},
		Images:  []string{},
		Custom:  []map[string]any{},
	}
	var texts []string
	for _, msg := range messages {
		if msg.Text != "" {
			texts = append(texts, msg.Text)
		}
		resp.Buttons = append(resp.Buttons, msg.Buttons...)
		if msg.Image != "" {
			resp.Images = append(resp.Images, msg.Image)
		}
		if msg.Custom != nil {
			resp.Custom = append(resp.Custom, msg.Custom)
		}
	}
	resp.BotResponse = strings.TrimSpace(strings.Join(texts, " "))

	h.metrics.IncrementChatRequests("ok")
	h.logger.InfoContext(ctx, "chat relayed",
		"request_id", requestID,
		"sender_id", sender,
		"fragments", len(messages),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}
