package action

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"defensoria/internal/lookup"
	dErrors "defensoria/pkg/domain-errors"
	"defensoria/pkg/platform/httputil"
	"defensoria/pkg/requestcontext"
)

// Handler exposes the registered actions over the webhook endpoint.
type Handler struct {
	actions map[string]Action
	logger  *slog.Logger
}

// NewHandler builds the webhook handler with its action registry.
func NewHandler(logger *slog.Logger, actions ...Action) *Handler {
	registry := make(map[string]Action, len(actions))
	for _, a := range actions {
		registry[a.Name()] = a
	}
	return &Handler{actions: registry, logger: logger}
}

// Register mounts the webhook endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/webhook", h.HandleWebhook)
}

// HandleWebhook runs the requested action and replies with its events and
// responses. Panics inside an action are the last-resort fault path: they
// are logged with a stack, the user gets the fixed retry-later message, and
// the identifier slot is cleared so the conversation cannot get stuck.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[Request](w, r, h.logger)
	if !ok {
		return
	}

	act, ok := h.actions[req.NextAction]
	if !ok {
		h.logger.WarnContext(ctx, "unknown action requested",
			"action", req.NextAction,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no registered action "+req.NextAction))
		return
	}

	defer func() {
		if p := recover(); p != nil {
			h.logger.ErrorContext(ctx, "action panicked",
				"action", req.NextAction,
				"sender_id", req.Tracker.SenderID,
				"request_id", requestID,
				"panic", p,
				"stack", string(debug.Stack()),
			)
			httputil.WriteJSON(w, http.StatusOK, WebhookResponse{
				Events:    []Event{SlotSet(IdentifierSlot, nil)},
				Responses: []Response{{Text: lookup.MsgInternalFault}},
			})
		}
	}()

	if req.Tracker.SenderID == "" {
		req.Tracker.SenderID = req.SenderID
	}
	ctx = requestcontext.WithSenderID(ctx, req.Tracker.SenderID)

	disp := &Dispatcher{}
	events, err := act.Run(ctx, disp, &req.Tracker)
	if err != nil {
		// Actions absorb their own faults; an error here means the action
		// chose to surface it, which still must not break the conversation.
		h.logger.ErrorContext(ctx, "action failed",
			"action", req.NextAction,
			"sender_id", req.Tracker.SenderID,
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteJSON(w, http.StatusOK, WebhookResponse{
			Events:    []Event{SlotSet(IdentifierSlot, nil)},
			Responses: []Response{{Text: lookup.MsgInternalFault}},
		})
		return
	}

	if events == nil {
		events = []Event{}
	}
	httputil.WriteJSON(w, http.StatusOK, WebhookResponse{
		Events:    events,
		Responses: disp.Responses(),
	})
}
