package evaluator

import (
	"regexp"
	"strings"
)

// Shared text-scanning primitives. Section extraction, structure checking
// and the statistical analyzers all work on the same regex semantics, so
// the patterns live here rather than being duplicated per checker.
var (
	tagPattern = regexp.MustCompile(`<[^>]+>`)
	// Word tokens are runs of letters, digits and underscores. \w would
	// only cover ASCII, splitting accented Portuguese and Spanish words
	// into fragments and skewing every per-word statistic.
	wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceEnd = regexp.MustCompile(`[.!?]+`)
)

// stripTags removes anything delimited by angle brackets, leaving the
// visible prose of a marked-up document.
func stripTags(text string) string {
	return tagPattern.ReplaceAllString(text, "")
}

// tokenizeWords returns the lower-cased word tokens of text
func tokenizeWords(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// splitSentences splits text on runs of sentence terminators and drops
// fragments that are empty after trimming.
func splitSentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// firstCapture returns the first submatch of re in text, or ok=false when
// the marker is absent. Only the first occurrence is honored.
func firstCapture(re *regexp.Regexp, text string) (string, bool) {
	match := re.FindStringSubmatch(text)
	if match == nil || len(match) < 2 {
		return "", false
	}
	return match[1], true
}
