// Package patch applies offset-based corrections to a base text. Spans are
// rune offsets into the original text. Replacements are spliced right to
// left (descending start) so earlier spans never invalidate later offsets.
package patch

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/25-26J-433-RP/lekhana/internal/model"
)

// Apply replaces each accepted correction span with its suggestion.
// Non-accepted corrections and corrections without a position are skipped.
//
// Spans must lie within the text and must not overlap one another. Offsets
// come from a trusted backend contract, so a violation is a hard error, not
// something to paper over.
func Apply(text string, corrs []model.Correction) (string, error) {
	spans := make([]model.Correction, 0, len(corrs))
	for _, c := range corrs {
		if !c.Accepted || c.Position == nil {
			continue
		}
		spans = append(spans, c)
	}
	if len(spans) == 0 {
		return text, nil
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Position.Start > spans[j].Position.Start
	})

	runes := []rune(text)
	if err := validate(spans, len(runes)); err != nil {
		return "", err
	}

	for _, c := range spans {
		repl := []rune(c.Suggestion)
		runes = append(runes[:c.Position.Start], append(repl, runes[c.Position.End:]...)...)
	}
	return string(runes), nil
}

// validate checks bounds and overlap over spans sorted descending by start.
func validate(spans []model.Correction, n int) error {
	for i, c := range spans {
		p := c.Position
		if p.Start < 0 || p.End < p.Start || p.End > n {
			return errors.Errorf("patch: span [%d,%d) out of bounds for text of %d runes", p.Start, p.End, n)
		}
		if i > 0 && p.End > spans[i-1].Position.Start {
			prev := spans[i-1].Position
			return errors.Errorf("patch: span [%d,%d) overlaps [%d,%d)", p.Start, p.End, prev.Start, prev.End)
		}
	}
	return nil
}
