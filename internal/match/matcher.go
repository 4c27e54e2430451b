// Package match reconciles an unordered list of backend-reported word errors
// onto the token runs of the source text. Backend errors are per-occurrence,
// so each error flags at most one token: the lookup entry is consumed on
// first match, left to right. Errors whose word never appears (or appears
// fewer times than it was reported) are dropped silently.
package match

import (
	"strings"

	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/token"
)

// punctuation is the fixed class stripped from a token before lookup.
// ASCII punctuation plus the quote/dash/danda forms that surround Sinhala
// prose; Sinhala letters themselves are never stripped.
const punctuation = ".,!?;:'\"()[]{}<>/\\|@#$%^&*_~`+=-" + "“”‘’–—…।"

// Key returns the lookup key for a word: the surface text with the fixed
// punctuation class removed, surrounding or embedded.
func Key(word string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, word)
}

// Reconcile produces one Token per run. Word runs whose key matches an
// unconsumed backend error of Type "error" come out flagged with the error's
// metadata attached; everything else (whitespace runs, clean words, entries
// of Type "correct") comes out ignored.
func Reconcile(runs []token.Run, errs []model.BackendError) []model.Token {
	// key -> queue of unconsumed errors, preserving backend order.
	pending := make(map[string][]model.BackendError, len(errs))
	for _, e := range errs {
		if e.Type != "error" {
			continue
		}
		k := Key(e.Word)
		if k == "" {
			continue
		}
		pending[k] = append(pending[k], e)
	}

	tokens := make([]model.Token, len(runs))
	for i, r := range runs {
		t := model.Token{
			ID:       i,
			Original: r.Text,
			Display:  r.Text,
			Kind:     model.KindWord,
			State:    model.StateIgnored,
		}
		if r.Whitespace {
			t.Kind = model.KindWhitespace
			tokens[i] = t
			continue
		}

		k := Key(r.Text)
		if queue := pending[k]; len(queue) > 0 {
			e := queue[0]
			if len(queue) == 1 {
				delete(pending, k)
			} else {
				pending[k] = queue[1:]
			}
			t.State = model.StateFlagged
			t.Corrected = e.Suggestion
			t.Pattern = e.Pattern
			t.Explanation = e.Explanation
			t.Confidence = e.Confidence
			t.Source = e.Source
		}
		tokens[i] = t
	}
	return tokens
}
