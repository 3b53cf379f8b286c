package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Intent is the coarse category of a user request
type Intent string

const (
	IntentBooking    Intent = "booking"
	IntentCancel     Intent = "cancel"
	IntentReschedule Intent = "reschedule"
	IntentUnknown    Intent = "unknown"
)

// AllIntents returns all valid intents
func AllIntents() []Intent {
	return []Intent{
		IntentBooking,
		IntentCancel,
		IntentReschedule,
		IntentUnknown,
	}
}

// IsValid checks if the intent is valid
func (i Intent) IsValid() bool {
	switch i {
	case IntentBooking,
		IntentCancel,
		IntentReschedule,
		IntentUnknown:
		return true
	default:
		return false
	}
}

// IsActionable reports whether the intent triggers a workflow dispatch
func (i Intent) IsActionable() bool {
	switch i {
	case IntentBooking, IntentCancel, IntentReschedule:
		return true
	default:
		return false
	}
}

// String returns the string representation of the intent
func (i Intent) String() string {
	return string(i)
}

// ParseIntent parses a string into an Intent
func ParseIntent(s string) (Intent, error) {
	intent := Intent(s)
	if !intent.IsValid() {
		return "", goerr.New("invalid intent", goerr.V("intent", s))
	}
	return intent, nil
}

// IntentFromText derives the intent by case-insensitive keyword match on the
// raw utterance. Rules are evaluated in order booking, cancel, reschedule and
// the first match wins. Since "reschedule" contains "schedule", such text is
// classified as booking.
func IntentFromText(text string) Intent {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "book") || strings.Contains(lower, "schedule"):
		return IntentBooking
	case strings.Contains(lower, "cancel"):
		return IntentCancel
	case strings.Contains(lower, "reschedule"):
		return IntentReschedule
	default:
		return IntentUnknown
	}
}
