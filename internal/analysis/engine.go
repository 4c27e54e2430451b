// Package analysis fetches word-level findings from the essay-analysis
// backends. Every engine speaks the same JSON contract:
//
//	{"errors": [{"word": …, "type": "error"|"correct", "suggestion": …,
//	             "dyslexiaPattern": …, "explanation": …, "confidence": …}]}
//
// The fetch is the engine's only asynchronous boundary; everything after it
// (matching, review, reconstruction) is pure and synchronous.
package analysis

import (
	"context"

	"github.com/25-26J-433-RP/lekhana/internal/chunk"
	"github.com/25-26J-433-RP/lekhana/internal/model"
)

// Engine is one analysis backend.
// protected words are proper nouns the engine must never flag.
type Engine interface {
	Name() string
	Analyze(ctx context.Context, text string, protected []string) ([]model.BackendError, error)
}

// AnalyzeChunked splits long essays into ≤300-word chunks and merges the
// per-chunk findings. Findings are word-identity records, so merging is a
// plain append in chunk order.
func AnalyzeChunked(ctx context.Context, e Engine, text string, protected []string) ([]model.BackendError, error) {
	parts := chunk.Split(text, chunk.MaxWords)
	if len(parts) == 1 {
		return e.Analyze(ctx, text, protected)
	}

	var merged []model.BackendError
	for _, p := range parts {
		errs, err := e.Analyze(ctx, p, protected)
		if err != nil {
			return nil, err
		}
		merged = append(merged, errs...)
	}
	return merged, nil
}

const systemPrompt = `You are a Sinhala spelling and dyslexia-pattern correction assistant for student essays. Output JSON only.

Rules:
- Report one entry per erroneous word occurrence, in reading order.
- Never flag words listed under "protected" (proper nouns).
- "type" is "error" for misspelled words and "correct" for words you examined and found fine.
- "suggestion" is the corrected form of the word (required when type is "error").
- "dyslexiaPattern" names the confusion pattern (e.g. mirror-letter, vowel-sign-omission) when one applies.
- "confidence" is a 0..1 score.
- If the essay has no errors, return {"errors": []}.

Output format (JSON only, no prose, no Markdown):
{
  "errors": [
    {
      "word": "<word as written>",
      "type": "error",
      "suggestion": "<corrected word>",
      "dyslexiaPattern": "<pattern>",
      "explanation": "<short reason>",
      "confidence": <float>
    }
  ]
}`
