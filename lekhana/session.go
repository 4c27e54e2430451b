// Package lekhana is the text core of the Sinhala essay-grading and
// dyslexia-correction workflow: it tokenizes an essay without losing
// whitespace, reconciles backend-reported word errors onto the right token
// occurrences, tracks each token through reviewer decisions, and
// deterministically rebuilds the corrected text.
package lekhana

import (
	"strings"

	"github.com/25-26J-433-RP/lekhana/internal/match"
	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/token"
)

// Session owns the token arena for one analysis run. Tokens are created once
// by Analyze, mutated only through the reducer, and discarded when a new
// analysis replaces them. A Session belongs to a single reviewer; it is not
// safe for concurrent use.
type Session struct {
	tokens []model.Token // arena; token ID == index
}

// Analyze tokenizes text and reconciles the backend findings onto it.
// Empty text yields a session with no tokens; findings for words not present
// in the text are dropped.
func Analyze(text string, errs []model.BackendError) *Session {
	return &Session{tokens: match.Reconcile(token.Split(text), errs)}
}

// Apply routes one reviewer action through the reducer.
// It reports whether the token changed; out-of-range ids are no-ops.
func (s *Session) Apply(id int, action Action, payload string) bool {
	if id < 0 || id >= len(s.tokens) {
		return false
	}
	next := Reduce(s.tokens[id], action, payload)
	changed := next != s.tokens[id]
	s.tokens[id] = next
	return changed
}

// Accept applies the suggestion attached to token id.
func (s *Session) Accept(id int) bool { return s.Apply(id, ActionAccept, "") }

// Reject restores token id to its original word.
func (s *Session) Reject(id int) bool { return s.Apply(id, ActionReject, "") }

// Edit replaces token id's word with reviewer-typed text.
func (s *Session) Edit(id int, word string) bool { return s.Apply(id, ActionEdit, word) }

// AcceptAll accepts every currently flagged token and returns how many
// changed.
func (s *Session) AcceptAll() int {
	n := 0
	for id, t := range s.tokens {
		if t.State == model.StateFlagged && s.Accept(id) {
			n++
		}
	}
	return n
}

// Token returns a copy of token id.
func (s *Session) Token(id int) (model.Token, bool) {
	if id < 0 || id >= len(s.tokens) {
		return model.Token{}, false
	}
	return s.tokens[id], true
}

// Tokens returns a copy of the full token sequence, in text order.
func (s *Session) Tokens() []model.Token {
	out := make([]model.Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Len returns the number of tokens.
func (s *Session) Len() int { return len(s.tokens) }

// Flagged returns how many tokens still await a reviewer decision.
func (s *Session) Flagged() int {
	n := 0
	for _, t := range s.tokens {
		if t.State == model.StateFlagged {
			n++
		}
	}
	return n
}

// Reconstruct concatenates the display text of every token, in order. Before
// any action it equals the original input exactly.
func (s *Session) Reconstruct() string {
	var b strings.Builder
	for _, t := range s.tokens {
		b.WriteString(t.Display)
	}
	return b.String()
}

// Original concatenates the original text of every token; it is invariant
// under any action sequence.
func (s *Session) Original() string {
	var b strings.Builder
	for _, t := range s.tokens {
		b.WriteString(t.Original)
	}
	return b.String()
}

// Records derives the audit/training-data rows: one per token whose final
// state is corrected.
func (s *Session) Records() []model.CorrectionRecord {
	var out []model.CorrectionRecord
	for _, t := range s.tokens {
		if t.State != model.StateCorrected {
			continue
		}
		out = append(out, model.CorrectionRecord{
			Original:  t.Original,
			Corrected: t.Display,
			Pattern:   t.Pattern,
		})
	}
	return out
}
