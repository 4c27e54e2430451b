package lekhana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/25-26J-433-RP/lekhana/internal/model"
)

func TestApplyCorrectionsPositional(t *testing.T) {
	got, err := ApplyCorrections("abcdef", []model.Correction{
		{Suggestion: "X", Accepted: true, Position: &model.Position{Start: 1, End: 2}},
		{Suggestion: "Y", Accepted: true, Position: &model.Position{Start: 4, End: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "aXcdYf", got)
}

func TestApplyCorrectionsByWord(t *testing.T) {
	got, err := ApplyCorrections("I has a bal.", []model.Correction{
		{Word: "has", Suggestion: "have", Accepted: true},
		{Word: "bal", Suggestion: "ball", Accepted: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "I have a ball.", got)
}

func TestApplyCorrectionsByWordSkipsRejected(t *testing.T) {
	got, err := ApplyCorrections("I has a bal.", []model.Correction{
		{Word: "has", Suggestion: "have", Accepted: true},
		{Word: "bal", Suggestion: "ball", Accepted: false},
	})
	require.NoError(t, err)
	assert.Equal(t, "I have a bal.", got)
}

func TestApplyCorrectionsByWordOnePerOccurrence(t *testing.T) {
	got, err := ApplyCorrections("bal and bal", []model.Correction{
		{Word: "bal", Suggestion: "ball", Accepted: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "ball and bal", got, "a single correction fixes a single occurrence")
}

func TestApplyCorrectionsMixedForms(t *testing.T) {
	_, err := ApplyCorrections("abcdef", []model.Correction{
		{Word: "abc", Suggestion: "xyz", Accepted: true},
		{Suggestion: "Y", Accepted: true, Position: &model.Position{Start: 4, End: 5}},
	})
	assert.ErrorIs(t, err, ErrMixedCorrections)
}

func TestApplyCorrectionsEmpty(t *testing.T) {
	got, err := ApplyCorrections("unchanged", nil)
	require.NoError(t, err)
	assert.Equal(t, "unchanged", got)
}

func TestApplyCorrectionsPositionalPropagatesViolation(t *testing.T) {
	_, err := ApplyCorrections("abc", []model.Correction{
		{Suggestion: "X", Accepted: true, Position: &model.Position{Start: 0, End: 10}},
	})
	assert.Error(t, err)
}
