package bench

import (
	"strings"
	"testing"

	"github.com/25-26J-433-RP/lekhana/internal/match"
	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/patch"
	"github.com/25-26J-433-RP/lekhana/internal/token"
)

// build the samples once – reuse in all benches.
var (
	short = strings.Repeat("word ", 299) + "end."
	long  = strings.Repeat("මම පාසල් යමි. ", 1000) // ~3 000 words

	longRuns = token.Split(long)

	findings = []model.BackendError{
		{Word: "යමි", Type: "error", Suggestion: "යනවා"},
		{Word: "word", Type: "error", Suggestion: "words"},
	}

	spans = []model.Correction{
		{Suggestion: "X", Accepted: true, Position: &model.Position{Start: 10, End: 14}},
		{Suggestion: "Y", Accepted: true, Position: &model.Position{Start: 100, End: 104}},
		{Suggestion: "Z", Accepted: true, Position: &model.Position{Start: 1000, End: 1004}},
	}
)

func BenchmarkTokenizeShort(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = token.Split(short)
	}
}

func BenchmarkTokenizeLong(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = token.Split(long)
	}
}

func BenchmarkReconcileLong(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = match.Reconcile(longRuns, findings)
	}
}

func BenchmarkPatchApply(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = patch.Apply(long, spans)
	}
}
