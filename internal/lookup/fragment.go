// Package lookup implements the case lookup and privacy-redaction engine:
// given a raw citizen identifier it produces the ordered conversational
// fragments describing the person's cases, redacting detail whenever the
// defended subject is a minor.
package lookup

// Button is one (label, action-code) pair attached to a fragment.
type Button struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// Fragment is one unit of outbound conversational output.
type Fragment struct {
	Text    string         `json:"text,omitempty"`
	Buttons []Button       `json:"buttons,omitempty"`
	Image   string         `json:"image,omitempty"`
	Custom  map[string]any `json:"custom,omitempty"`
}

// Result carries the ordered fragments of one lookup plus the signal that
// the identifier slot should be cleared by the dialogue backend.
type Result struct {
	Fragments []Fragment
	ClearSlot bool
}

func textFragment(text string) Fragment {
	return Fragment{Text: text}
}
