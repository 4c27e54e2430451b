package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/25-26J-433-RP/lekhana/internal/model"
)

// stubEngine records the texts it was asked to analyze and returns one
// finding per call.
type stubEngine struct {
	calls []string
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Analyze(ctx context.Context, text string, protected []string) ([]model.BackendError, error) {
	s.calls = append(s.calls, text)
	word := strings.Fields(text)[0]
	return []model.BackendError{{Word: word, Type: "error", Suggestion: word + "x"}}, nil
}

func TestAnalyzeChunkedShortText(t *testing.T) {
	e := &stubEngine{}
	errs, err := AnalyzeChunked(context.Background(), e, "short essay", nil)
	require.NoError(t, err)
	assert.Len(t, e.calls, 1, "short text must go out in one request")
	assert.Len(t, errs, 1)
}

func TestAnalyzeChunkedMergesInOrder(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("w ", 650))
	e := &stubEngine{}

	errs, err := AnalyzeChunked(context.Background(), e, text, nil)
	require.NoError(t, err)
	require.Len(t, e.calls, 3)
	assert.Len(t, errs, 3, "per-chunk findings are appended in chunk order")
}

func TestUserMessageProtectedWords(t *testing.T) {
	msg := userMessage("essay text", []string{"Nimal"})
	assert.Contains(t, msg, `"Nimal"`)
	assert.Contains(t, msg, "essay text")

	plain := userMessage("essay text", nil)
	assert.Equal(t, "Essay:\nessay text", plain)
}
