package evaluator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCharacterLimits_MaxBoundary(t *testing.T) {
	e := newTestEvaluator(t)

	atLimit := strings.Repeat("a", 70)
	results := e.EvaluateCharacterLimits(SectionMap{"title": atLimit})

	require.Contains(t, results, "title")
	assert.Equal(t, 70, results["title"].CharCount)
	assert.True(t, results["title"].Compliant)
	assert.Equal(t, "70/70 chars", results["title"].Status)

	results = e.EvaluateCharacterLimits(SectionMap{"title": atLimit + "a"})
	assert.False(t, results["title"].Compliant)
	assert.Equal(t, "71/70 chars", results["title"].Status)
}

func TestEvaluateCharacterLimits_AccentedTextCountsCharacters(t *testing.T) {
	e := newTestEvaluator(t)

	// "ã" is two bytes in UTF-8; the budget is in characters, so 70 of
	// them must still be compliant.
	atLimit := strings.Repeat("ã", 70)
	results := e.EvaluateCharacterLimits(SectionMap{"title": atLimit})

	require.Contains(t, results, "title")
	assert.Equal(t, 70, results["title"].CharCount)
	assert.True(t, results["title"].Compliant)
	assert.Equal(t, "70/70 chars", results["title"].Status)

	results = e.EvaluateCharacterLimits(SectionMap{"title": atLimit + "ã"})
	assert.Equal(t, 71, results["title"].CharCount)
	assert.False(t, results["title"].Compliant)
}

func TestEvaluateCharacterLimits_RangeBoundaries(t *testing.T) {
	e := newTestEvaluator(t)

	tests := []struct {
		length    int
		compliant bool
	}{
		{499, false},
		{500, true},
		{700, true},
		{701, false},
	}

	for _, tt := range tests {
		results := e.EvaluateCharacterLimits(SectionMap{
			"description": strings.Repeat("a", tt.length),
		})
		require.Contains(t, results, "description")
		assert.Equal(t, tt.length, results["description"].CharCount)
		assert.Equal(t, tt.compliant, results["description"].Compliant, "length %d", tt.length)
	}
}

func TestEvaluateCharacterLimits_RangeStatus(t *testing.T) {
	e := newTestEvaluator(t)

	results := e.EvaluateCharacterLimits(SectionMap{
		"description": strings.Repeat("a", 550),
	})

	assert.Equal(t, "550 chars (target: 500-700)", results["description"].Status)
}

func TestEvaluateCharacterLimits_StripsMarkupAndWhitespace(t *testing.T) {
	e := newTestEvaluator(t)

	// Tags and surrounding whitespace do not count toward the budget
	results := e.EvaluateCharacterLimits(SectionMap{
		"title": "  <b>" + strings.Repeat("a", 70) + "</b>  ",
	})

	assert.Equal(t, 70, results["title"].CharCount)
	assert.True(t, results["title"].Compliant)
}

func TestEvaluateCharacterLimits_OmitsUnconfiguredSections(t *testing.T) {
	e := newTestEvaluator(t)

	results := e.EvaluateCharacterLimits(SectionMap{
		"title":    "Short title",
		"h1":       "No budget configured for this one",
		"synopsis": "Nor this one",
	})

	assert.Len(t, results, 1)
	assert.Contains(t, results, "title")
}

func TestEvaluateCharacterLimits_EmptySectionMap(t *testing.T) {
	e := newTestEvaluator(t)

	results := e.EvaluateCharacterLimits(SectionMap{})
	assert.Empty(t, results)
}
