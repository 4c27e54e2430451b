package lekhana

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/25-26J-433-RP/lekhana/internal/analysis"
	"github.com/25-26J-433-RP/lekhana/internal/local"
	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/patch"
	"github.com/25-26J-433-RP/lekhana/internal/util"
)

// Check submits text (any length) to the given analysis engine and returns a
// normalized Report: the reviewable token sequence plus a preview with every
// suggestion accepted.
//
// Long essays are transparently split into ≤300-word chunks before the
// engine call. ctx controls overall timeout / cancellation.
func Check(ctx context.Context, e analysis.Engine, text string) (*model.Report, error) {
	return CheckWithDict(ctx, e, text, nil)
}

// CheckWithDict is like Check but passes dict.Words to the engine as
// protected terms and drops any finding for them that comes back anyway.
func CheckWithDict(ctx context.Context, e analysis.Engine, text string, dict *Dict) (*model.Report, error) {
	text = strings.TrimSpace(text)
	if ctx == nil {
		return nil, errors.New("ctx is nil")
	}

	var protected []string
	if dict != nil {
		protected = dict.Words
	}

	findings, err := analysis.AnalyzeChunked(ctx, e, text, protected)
	if err != nil {
		return nil, err
	}
	findings = FilterErrors(findings, dict)

	return buildReport(text, findings), nil
}

// CheckLocal checks text with the offline hunspell backend. Its findings
// carry rune offsets, so the corrected preview goes through the offset
// patcher instead of the token engine.
func CheckLocal(ctx context.Context, text string, h *local.Hunspell) (*model.Report, error) {
	corrs, err := h.CheckText(text)
	if err != nil {
		return nil, err
	}

	corrected, err := patch.Apply(text, corrs)
	if err != nil {
		return nil, err
	}

	records := make([]model.CorrectionRecord, 0, len(corrs))
	for _, c := range corrs {
		records = append(records, model.CorrectionRecord{
			Original:  c.Word,
			Corrected: c.Suggestion,
			Pattern:   c.Pattern,
		})
	}

	return &model.Report{
		Original:     text,
		Corrected:    corrected,
		EditDistance: util.Levenshtein(text, corrected),
		CharCount:    utf8.RuneCountInString(text),
		ErrorCount:   len(corrs),
		Records:      records,
	}, nil
}

// CheckLocalWithDict is like CheckLocal but skips corrections for protected
// terms.
func CheckLocalWithDict(ctx context.Context, text string, h *local.Hunspell, dict *Dict) (*model.Report, error) {
	if dict == nil || len(dict.Words) == 0 {
		return CheckLocal(ctx, text, h)
	}

	corrs, err := h.CheckText(text)
	if err != nil {
		return nil, err
	}

	kept := corrs[:0]
	for _, c := range corrs {
		if dict.Protects(c.Word) {
			continue
		}
		kept = append(kept, c)
	}

	corrected, err := patch.Apply(text, kept)
	if err != nil {
		return nil, err
	}

	records := make([]model.CorrectionRecord, 0, len(kept))
	for _, c := range kept {
		records = append(records, model.CorrectionRecord{
			Original:  c.Word,
			Corrected: c.Suggestion,
			Pattern:   c.Pattern,
		})
	}

	return &model.Report{
		Original:     text,
		Corrected:    corrected,
		EditDistance: util.Levenshtein(text, corrected),
		CharCount:    utf8.RuneCountInString(text),
		ErrorCount:   len(kept),
		Records:      records,
	}, nil
}

// buildReport reconciles findings onto text and fills in the computed
// fields. Tokens keep their flagged states for the reviewer; Corrected and
// Records come from a separate all-accepted pass.
func buildReport(text string, findings []model.BackendError) *model.Report {
	s := Analyze(text, findings)
	tokens := s.Tokens()
	flagged := s.Flagged()

	s.AcceptAll()
	corrected := s.Reconstruct()

	return &model.Report{
		Original:     text,
		Corrected:    corrected,
		EditDistance: util.Levenshtein(text, corrected),
		CharCount:    utf8.RuneCountInString(text),
		ErrorCount:   flagged,
		Tokens:       tokens,
		Records:      s.Records(),
	}
}
