package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/token"
)

func reconcile(text string, errs ...model.BackendError) []model.Token {
	return Reconcile(token.Split(text), errs)
}

func flaggedIDs(tokens []model.Token) []int {
	var ids []int
	for _, t := range tokens {
		if t.State == model.StateFlagged {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func TestReconcileFlagsMatchedWord(t *testing.T) {
	tokens := reconcile("I has a bal.",
		model.BackendError{Word: "has", Type: "error", Suggestion: "have", Pattern: "verb-agreement"},
	)
	require.Len(t, tokens, 7) // 4 words, 3 spaces

	has := tokens[2]
	assert.Equal(t, model.StateFlagged, has.State)
	assert.Equal(t, "have", has.Corrected)
	assert.Equal(t, "verb-agreement", has.Pattern)
	assert.Equal(t, "has", has.Display, "flagging must not change the display text")
}

func TestReconcilePunctuationAdjacentMatch(t *testing.T) {
	tokens := reconcile("I has a bal.",
		model.BackendError{Word: "bal", Type: "error", Suggestion: "ball"},
	)
	last := tokens[6]
	assert.Equal(t, "bal.", last.Original)
	assert.Equal(t, model.StateFlagged, last.State)
	assert.Equal(t, "ball", last.Corrected)
}

func TestReconcileOneToOne(t *testing.T) {
	// One reported error for a word that appears twice: exactly one token is
	// flagged, and it is the first occurrence.
	tokens := reconcile("the book on the book shelf",
		model.BackendError{Word: "book", Type: "error", Suggestion: "books"},
	)
	ids := flaggedIDs(tokens)
	require.Len(t, ids, 1)
	assert.Equal(t, "book", tokens[ids[0]].Original)
	assert.Equal(t, 2, ids[0], "first occurrence must win")
}

func TestReconcilePerOccurrenceErrors(t *testing.T) {
	tokens := reconcile("bal and bal",
		model.BackendError{Word: "bal", Type: "error", Suggestion: "ball"},
		model.BackendError{Word: "bal", Type: "error", Suggestion: "bowl"},
	)
	ids := flaggedIDs(tokens)
	require.Len(t, ids, 2)
	assert.Equal(t, "ball", tokens[ids[0]].Corrected, "backend order must be preserved")
	assert.Equal(t, "bowl", tokens[ids[1]].Corrected)
}

func TestReconcileExcessErrorsDropped(t *testing.T) {
	// More errors for a word than occurrences: the excess is silently
	// dropped, by contract.
	tokens := reconcile("bal once",
		model.BackendError{Word: "bal", Type: "error", Suggestion: "ball"},
		model.BackendError{Word: "bal", Type: "error", Suggestion: "bowl"},
	)
	ids := flaggedIDs(tokens)
	require.Len(t, ids, 1)
	assert.Equal(t, "ball", tokens[ids[0]].Corrected)
}

func TestReconcileUnknownWordUnconsumed(t *testing.T) {
	tokens := reconcile("all fine here",
		model.BackendError{Word: "missing", Type: "error", Suggestion: "present"},
	)
	assert.Empty(t, flaggedIDs(tokens))
}

func TestReconcileCorrectEntriesNeverFlag(t *testing.T) {
	tokens := reconcile("I has a bal.",
		model.BackendError{Word: "has", Type: "correct"},
	)
	assert.Empty(t, flaggedIDs(tokens))
}

func TestReconcileWhitespaceInert(t *testing.T) {
	tokens := reconcile("a  b",
		model.BackendError{Word: "a", Type: "error", Suggestion: "an"},
	)
	require.Len(t, tokens, 3)
	ws := tokens[1]
	assert.Equal(t, model.KindWhitespace, ws.Kind)
	assert.Equal(t, model.StateIgnored, ws.State)
	assert.Empty(t, ws.Corrected)
}

func TestReconcileSinhalaWithPunctuation(t *testing.T) {
	// Sinhala word followed by ASCII punctuation: the letters survive key
	// stripping, the period does not.
	tokens := reconcile("මම පාසල් යමි.",
		model.BackendError{Word: "යමි", Type: "error", Suggestion: "යනවා"},
	)
	ids := flaggedIDs(tokens)
	require.Len(t, ids, 1)
	assert.Equal(t, "යමි.", tokens[ids[0]].Original)
}

func TestKeyStripsPunctuationOnly(t *testing.T) {
	assert.Equal(t, "bal", Key("bal."))
	assert.Equal(t, "bal", Key("“bal,”"))
	assert.Equal(t, "dont", Key("don't"), "embedded punctuation is stripped too")
	assert.Equal(t, "මම", Key("මම।"))
	assert.Equal(t, "පාසල්", Key("පාසල්"), "Sinhala letters and signs are never stripped")
}

func TestReconcileEmptyText(t *testing.T) {
	assert.Empty(t, reconcile("", model.BackendError{Word: "x", Type: "error", Suggestion: "y"}))
}
