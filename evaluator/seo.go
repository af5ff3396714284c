package evaluator

import "strings"

// Each matched phrase is worth 20 points, capped at 100
const pointsPerKeyword = 20

// EvaluateSeoKeywords scans the document against the language's pattern
// table and reports keyword occurrences, density and the capped sub-score.
// Matches are collected per pattern in table order, not by position in the
// text. An unrecognized language has an empty table and scores zero.
func (e *Evaluator) EvaluateSeoKeywords(content string, language Language) SeoMetrics {
	lowered := strings.ToLower(content)

	found := []string{}
	for _, pattern := range e.keywords[language] {
		if matches := pattern.FindAllString(lowered, -1); matches != nil {
			found = append(found, matches...)
		}
	}

	words := tokenizeWords(content)
	density := 0.0
	if len(words) > 0 {
		density = round2(float64(len(found)) / float64(len(words)) * 100)
	}

	score := len(found) * pointsPerKeyword
	if score > 100 {
		score = 100
	}

	return SeoMetrics{
		FoundKeywords:  found,
		KeywordCount:   len(found),
		KeywordDensity: density,
		Score:          score,
	}
}
