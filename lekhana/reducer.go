package lekhana

import (
	"strings"

	"github.com/25-26J-433-RP/lekhana/internal/model"
)

// Action is one discrete reviewer decision on a token.
type Action string

const (
	// ActionAccept applies the attached suggestion.
	ActionAccept Action = "accept"
	// ActionReject restores the original word.
	ActionReject Action = "reject"
	// ActionEdit replaces the word with reviewer-typed text.
	ActionEdit Action = "edit"
)

// Reduce is the single state-transition function of the review workflow.
// It is pure and total: given any (token, action, payload) it returns the
// resulting token. Unknown actions, actions on whitespace tokens, and
// payloads that would leave a word empty are no-ops. Original is never
// touched.
func Reduce(t model.Token, action Action, payload string) model.Token {
	if t.Kind == model.KindWhitespace {
		return t
	}

	switch action {
	case ActionAccept:
		// Meaningful only from flagged, or from ignored with a known
		// suggestion (e.g. re-accepting after a reject).
		if t.State == model.StateCorrected {
			return t
		}
		if t.State == model.StateIgnored && t.Corrected == "" {
			return t
		}
		repl := t.Corrected
		if strings.TrimSpace(repl) == "" {
			repl = t.Original
		}
		t.Display = repl
		t.State = model.StateCorrected

	case ActionReject:
		if t.State != model.StateFlagged && t.State != model.StateCorrected {
			return t
		}
		t.Display = t.Original
		t.State = model.StateIgnored

	case ActionEdit:
		// A word token may never become empty, or reconstruction would
		// merge its neighbouring whitespace runs.
		if strings.TrimSpace(payload) == "" {
			return t
		}
		t.Display = payload
		t.Corrected = payload
		t.State = model.StateCorrected
	}
	return t
}
