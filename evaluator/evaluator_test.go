package evaluator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullMarksDocument builds a document that maxes out every category: all
// seven blocks present, every budgeted section within its limit, simple
// prose scoring well on readability, and more than five keyword matches.
func fullMarksDocument() string {
	description := strings.Repeat("The flat is big and warm. ", 20) +
		"Real estate buyers love this property in Lisbon."

	return strings.Join([]string{
		"<title>3-bedroom apartment for sale in Lisbon</title>",
		`<meta name="description" content="Bright 3-bedroom apartment for sale in Lisbon. Real estate with river views.">`,
		"<h1>Apartment for sale in Lisbon</h1>",
		`<section id="description">` + description + `</section>`,
		`<ul id="key-features"><li>Two baths</li><li>Big sun room</li></ul>`,
		`<section id="neighborhood">The area is calm and green. Shops and parks are near.</section>`,
		`<p class="call-to-action">Call us now to see this home.</p>`,
	}, "\n")
}

func TestEvaluate_EmptyDocument(t *testing.T) {
	e := newTestEvaluator(t)

	report := e.Evaluate("", LanguageEnglish)

	// Zero words trigger the zero-metrics readability branch, which lands
	// in the lowest tier and contributes the floor of 10 points; every
	// other category contributes nothing.
	assert.Equal(t, 10, report.OverallScore)
	assert.Equal(t, ReadabilityMetrics{}, report.Readability)
	assert.Equal(t, 0, report.Seo.KeywordCount)
	assert.Empty(t, report.CharacterLimits)
	assert.Len(t, report.Structure, 7)
	assert.Equal(t, 0, report.SectionsFound)
}

func TestEvaluate_FullMarks(t *testing.T) {
	e := newTestEvaluator(t)

	report := e.Evaluate(fullMarksDocument(), LanguageEnglish)

	require.GreaterOrEqual(t, report.Readability.Score, 60.0)
	require.GreaterOrEqual(t, report.Seo.KeywordCount, 5)
	for section, result := range report.CharacterLimits {
		require.True(t, result.Compliant, "section %s: %s", section, result.Status)
	}
	for block, found := range report.Structure {
		require.True(t, found, "block %s", block)
	}

	assert.Equal(t, 100, report.OverallScore)
	assert.Equal(t, 3, report.SectionsFound)
}

func TestEvaluate_ScoreAlwaysInRange(t *testing.T) {
	e := newTestEvaluator(t)

	inputs := []string{
		"",
		"plain text with no markup at all",
		"<title>unterminated",
		strings.Repeat("real estate ", 100),
		"<<<>>><><><",
		fullMarksDocument(),
	}

	for _, input := range inputs {
		for _, language := range []Language{LanguageEnglish, LanguagePortuguese, LanguageSpanish, "zz"} {
			report := e.Evaluate(input, language)
			assert.GreaterOrEqual(t, report.OverallScore, 0)
			assert.LessOrEqual(t, report.OverallScore, 100)
			assert.GreaterOrEqual(t, report.Readability.Score, 0.0)
			assert.LessOrEqual(t, report.Readability.Score, 100.0)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := newTestEvaluator(t)
	document := fullMarksDocument()

	first, err := json.Marshal(e.Evaluate(document, LanguageEnglish))
	require.NoError(t, err)
	second, err := json.Marshal(e.Evaluate(document, LanguageEnglish))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluate_UnsupportedLanguageDegrades(t *testing.T) {
	e := newTestEvaluator(t)

	report := e.Evaluate(fullMarksDocument(), Language("de"))

	// Same document, no keyword table: only the SEO category collapses
	assert.Equal(t, 0, report.Seo.Score)
	assert.Equal(t, 75, report.OverallScore)
}

func TestNew_InvalidPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeywordPatterns[LanguageEnglish] = []string{"("}

	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyword pattern")
}

func TestNew_InvalidBlockPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RequiredBlocks = []Block{{Name: "broken", Pattern: "["}}

	_, err := New(cfg)
	require.Error(t, err)
}

func TestEvaluate_ConcurrentUse(t *testing.T) {
	e := newTestEvaluator(t)
	document := fullMarksDocument()

	done := make(chan *Report, 16)
	for i := 0; i < 16; i++ {
		go func() {
			done <- e.Evaluate(document, LanguageEnglish)
		}()
	}

	for i := 0; i < 16; i++ {
		report := <-done
		assert.Equal(t, 100, report.OverallScore)
	}
}
