package lekhana

import (
	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/patch"
)

// ApplyCorrections applies the accepted corrections to text and returns the
// result. Both backend contracts go through here: corrections that all carry
// positions take the offset patcher (right-to-left splice), corrections
// without positions are matched by word identity through the token engine.
// A list mixing the two forms is rejected with ErrMixedCorrections.
func ApplyCorrections(text string, corrs []model.Correction) (string, error) {
	positional := 0
	for _, c := range corrs {
		if c.Position != nil {
			positional++
		}
	}

	switch {
	case len(corrs) == 0:
		return text, nil
	case positional == len(corrs):
		return patch.Apply(text, corrs)
	case positional == 0:
		return applyByWord(text, corrs), nil
	default:
		return "", ErrMixedCorrections
	}
}

// applyByWord reconciles word-identity corrections onto the text and accepts
// every flagged occurrence.
func applyByWord(text string, corrs []model.Correction) string {
	errs := make([]model.BackendError, 0, len(corrs))
	for _, c := range corrs {
		if !c.Accepted {
			continue
		}
		errs = append(errs, model.BackendError{
			Word:       c.Word,
			Type:       "error",
			Suggestion: c.Suggestion,
			Pattern:    c.Pattern,
			Confidence: c.Confidence,
		})
	}

	s := Analyze(text, errs)
	s.AcceptAll()
	return s.Reconstruct()
}
