// Package action implements the webhook server the dialogue backend calls
// to run custom actions: the case lookup, the form slot validators, the
// human handoff, and slot housekeeping.
package action

import (
	"fmt"

	"defensoria/internal/lookup"
)

// Request is the webhook payload: which action to run and the conversation
// state it runs against.
type Request struct {
	NextAction string         `json:"next_action"`
	SenderID   string         `json:"sender_id"`
	Tracker    Tracker        `json:"tracker"`
	Domain     map[string]any `json:"domain,omitempty"`
}

// Tracker is the slice of conversation state an action may read.
type Tracker struct {
	SenderID      string         `json:"sender_id"`
	Slots         map[string]any `json:"slots"`
	LatestMessage map[string]any `json:"latest_message,omitempty"`
}

// Slot returns the named slot coerced to a string, "" when unset or null.
func (t *Tracker) Slot(name string) string {
	v, ok := t.Slots[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// HasSlot reports whether the slot is present with a non-null value.
func (t *Tracker) HasSlot(name string) bool {
	v, ok := t.Slots[name]
	return ok && v != nil
}

// Event is one tracker mutation returned to the dialogue backend.
type Event struct {
	Event string `json:"event"`
	Name  string `json:"name,omitempty"`
	Value any    `json:"value"`
}

// SlotSet builds a slot event; a nil value clears the slot.
func SlotSet(name string, value any) Event {
	return Event{Event: "slot", Name: name, Value: value}
}

// FollowupAction queues the named action or form to run next.
func FollowupAction(name string) Event {
	return Event{Event: "followup", Name: name}
}

// Response is one outbound message produced by an action.
type Response struct {
	Text    string          `json:"text,omitempty"`
	Buttons []lookup.Button `json:"buttons,omitempty"`
	Image   string          `json:"image,omitempty"`
	Custom  map[string]any  `json:"custom,omitempty"`
}

// WebhookResponse is the full webhook reply.
type WebhookResponse struct {
	Events    []Event    `json:"events"`
	Responses []Response `json:"responses"`
}
