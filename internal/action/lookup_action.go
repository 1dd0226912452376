package action

import (
	"context"
	"log/slog"

	"defensoria/internal/lookup"
	lookupmetrics "defensoria/internal/lookup/metrics"
)

// IdentifierSlot is the slot carrying the citizen identifier between the
// lookup form and this action.
const IdentifierSlot = "numero_identificacion"

// LookupService runs a case lookup for a raw identifier.
type LookupService interface {
	Lookup(ctx context.Context, rawID string) (*lookup.Result, error)
}

// LookupAction bridges the dialogue backend to the lookup orchestrator.
type LookupAction struct {
	service LookupService
	logger  *slog.Logger
	metrics *lookupmetrics.Metrics
}

// NewLookupAction constructs the action_lookup_cedula handler.
func NewLookupAction(service LookupService, logger *slog.Logger, m *lookupmetrics.Metrics) *LookupAction {
	return &LookupAction{service: service, logger: logger, metrics: m}
}

func (a *LookupAction) Name() string { return "action_lookup_cedula" }

// Run executes the lookup and maps its result onto the wire: fragments
// become responses, the clear-slot signal becomes a slot event. A lookup
// error is absorbed here: the user gets the fixed retry-later message and
// the slot is still cleared so the conversation cannot get stuck.
func (a *LookupAction) Run(ctx context.Context, disp *Dispatcher, tracker *Tracker) ([]Event, error) {
	rawID := tracker.Slot(IdentifierSlot)

	result, err := a.service.Lookup(ctx, rawID)
	if err != nil {
		a.logger.ErrorContext(ctx, "case lookup failed",
			"sender_id", tracker.SenderID,
			"error", err,
		)
		a.metrics.IncrementOutcome(lookupmetrics.OutcomeFault)
		disp.Utter(lookup.MsgInternalFault)
		return []Event{SlotSet(IdentifierSlot, nil)}, nil
	}

	for _, frag := range result.Fragments {
		disp.UtterFragment(frag)
	}

	if result.ClearSlot {
		return []Event{SlotSet(IdentifierSlot, nil)}, nil
	}
	return nil, nil
}
