package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/25-26J-433-RP/lekhana/internal/model"
)

func pos(start, end int) *model.Position {
	return &model.Position{Start: start, End: end}
}

func TestApplyDescendingOrder(t *testing.T) {
	got, err := Apply("abcdef", []model.Correction{
		{Suggestion: "X", Accepted: true, Position: pos(1, 2)},
		{Suggestion: "Y", Accepted: true, Position: pos(4, 5)},
	})
	require.NoError(t, err)
	assert.Equal(t, "aXcdYf", got)
}

func TestApplyUnsortedInput(t *testing.T) {
	// Later span first in the list: sorting inside Apply must still keep the
	// earlier offsets valid.
	got, err := Apply("abcdef", []model.Correction{
		{Suggestion: "YY", Accepted: true, Position: pos(4, 5)},
		{Suggestion: "XXX", Accepted: true, Position: pos(1, 2)},
	})
	require.NoError(t, err)
	assert.Equal(t, "aXXXcdYYf", got)
}

func TestApplySkipsNotAccepted(t *testing.T) {
	got, err := Apply("abcdef", []model.Correction{
		{Suggestion: "X", Accepted: false, Position: pos(1, 2)},
		{Suggestion: "Y", Accepted: true, Position: pos(4, 5)},
	})
	require.NoError(t, err)
	assert.Equal(t, "abcdYf", got)
}

func TestApplyRuneOffsets(t *testing.T) {
	// Offsets are rune offsets: Sinhala codepoints are multi-byte, so byte
	// offsets would corrupt the text.
	got, err := Apply("මම යමි", []model.Correction{
		{Suggestion: "යනවා", Accepted: true, Position: pos(3, 6)},
	})
	require.NoError(t, err)
	assert.Equal(t, "මම යනවා", got)
}

func TestApplyGrowingAndShrinkingReplacements(t *testing.T) {
	got, err := Apply("one two three", []model.Correction{
		{Suggestion: "1", Accepted: true, Position: pos(0, 3)},
		{Suggestion: "twenty-two", Accepted: true, Position: pos(4, 7)},
	})
	require.NoError(t, err)
	assert.Equal(t, "1 twenty-two three", got)
}

func TestApplyEmptyList(t *testing.T) {
	got, err := Apply("unchanged", nil)
	require.NoError(t, err)
	assert.Equal(t, "unchanged", got)
}

func TestApplyOutOfBounds(t *testing.T) {
	_, err := Apply("abc", []model.Correction{
		{Suggestion: "X", Accepted: true, Position: pos(2, 9)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of bounds")
}

func TestApplyNegativeStart(t *testing.T) {
	_, err := Apply("abc", []model.Correction{
		{Suggestion: "X", Accepted: true, Position: pos(-1, 2)},
	})
	require.Error(t, err)
}

func TestApplyOverlapFailsLoudly(t *testing.T) {
	// Overlapping ranges violate the backend contract: hard error, never
	// silent corruption.
	_, err := Apply("abcdef", []model.Correction{
		{Suggestion: "X", Accepted: true, Position: pos(1, 4)},
		{Suggestion: "Y", Accepted: true, Position: pos(3, 5)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlaps")
}

func TestApplyAdjacentSpansAllowed(t *testing.T) {
	got, err := Apply("abcd", []model.Correction{
		{Suggestion: "X", Accepted: true, Position: pos(0, 2)},
		{Suggestion: "Y", Accepted: true, Position: pos(2, 4)},
	})
	require.NoError(t, err)
	assert.Equal(t, "XY", got)
}

func TestApplyIgnoresPositionlessRecords(t *testing.T) {
	got, err := Apply("abcdef", []model.Correction{
		{Word: "abc", Suggestion: "zzz", Accepted: true},
		{Suggestion: "Y", Accepted: true, Position: pos(4, 5)},
	})
	require.NoError(t, err)
	assert.Equal(t, "abcdYf", got)
}
