package action

import (
	"context"

	"defensoria/internal/lookup"
)

// Action is one named operation the dialogue backend can invoke.
type Action interface {
	Name() string
	Run(ctx context.Context, disp *Dispatcher, tracker *Tracker) ([]Event, error)
}

// Dispatcher collects the outbound messages an action produces, in order.
type Dispatcher struct {
	responses []Response
}

// Utter queues a plain text message.
func (d *Dispatcher) Utter(text string) {
	d.responses = append(d.responses, Response{Text: text})
}

// UtterButtons queues a text message with action buttons.
func (d *Dispatcher) UtterButtons(text string, buttons ...lookup.Button) {
	d.responses = append(d.responses, Response{Text: text, Buttons: buttons})
}

// UtterFragment queues a composed lookup fragment.
func (d *Dispatcher) UtterFragment(f lookup.Fragment) {
	d.responses = append(d.responses, Response{
		Text:    f.Text,
		Buttons: f.Buttons,
		Image:   f.Image,
		Custom:  f.Custom,
	})
}

// Responses returns the collected messages.
func (d *Dispatcher) Responses() []Response {
	if d.responses == nil {
		return []Response{}
	}
	return d.responses
}
