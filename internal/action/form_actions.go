package action

import (
	"context"

	"defensoria/internal/forms"
)

// FormValidation runs a form's slot validators against the tracker. Each
// registered slot that carries a value is validated in the form's declared
// order; rejected slots are reset to null and their re-prompts uttered.
type FormValidation struct {
	form forms.Form
}

// NewFormValidation wraps a form definition as a validate_<form> action.
func NewFormValidation(form forms.Form) *FormValidation {
	return &FormValidation{form: form}
}

func (a *FormValidation) Name() string { return "validate_" + a.form.Name }

func (a *FormValidation) Run(_ context.Context, disp *Dispatcher, tracker *Tracker) ([]Event, error) {
	var events []Event
	for _, slot := range a.form.Slots {
		if !tracker.HasSlot(slot) {
			continue
		}
		res := a.form.Validators[slot](tracker.Slot(slot))
		if res.Rejected() {
			disp.Utter(res.Prompt)
		}
		events = append(events, SlotSet(slot, res.Value))
	}
	return events, nil
}

// ResetPQRSSlots clears the complaint form's slots when the flow closes so
// they never contaminate another flow in the same conversation.
type ResetPQRSSlots struct{}

func (ResetPQRSSlots) Name() string { return "action_reset_pqrs_slots" }

func (ResetPQRSSlots) Run(_ context.Context, _ *Dispatcher, _ *Tracker) ([]Event, error) {
	events := make([]Event, 0, len(forms.PQRSSlots))
	for _, slot := range forms.PQRSSlots {
		events = append(events, SlotSet(slot, nil))
	}
	return events, nil
}

// Handoff announces the transfer to a human advisor and queues the contact
// form to capture a callback name and phone.
type Handoff struct{}

func (Handoff) Name() string { return "action_handoff" }

func (Handoff) Run(_ context.Context, disp *Dispatcher, _ *Tracker) ([]Event, error) {
	disp.Utter("Te pondré en contacto con un asesor humano. " +
		"Si quieres, puedes dejar tu **nombre** y **teléfono** para adelantar la gestión.")
	return []Event{FollowupAction("contacto_form")}, nil
}
