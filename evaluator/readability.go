package evaluator

import (
	"math"
	"strings"
)

// Coefficients of the classical reading-ease formula. Downstream scoring
// depends on these exact constants.
const (
	readabilityBase      = 206.835
	sentenceLengthWeight = 1.015
	syllableWeight       = 84.6
)

// EvaluateReadability computes sentence, word and syllable statistics over
// the document's visible text and derives the reading-ease score, clamped
// to [0,100]. A document with no sentences or no words yields all-zero
// metrics rather than a division by zero.
func (e *Evaluator) EvaluateReadability(content string) ReadabilityMetrics {
	prose := stripTags(content)
	sentences := splitSentences(prose)
	words := tokenizeWords(prose)

	if len(sentences) == 0 || len(words) == 0 {
		return ReadabilityMetrics{}
	}

	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	avgSentenceLength := float64(len(words)) / float64(len(sentences))
	avgSyllables := float64(syllables) / float64(len(words))

	score := readabilityBase - sentenceLengthWeight*avgSentenceLength - syllableWeight*avgSyllables
	score = math.Max(0, math.Min(100, score))

	return ReadabilityMetrics{
		Score:               round1(score),
		AvgWordsPerSentence: round1(avgSentenceLength),
		AvgSyllablesPerWord: round2(avgSyllables),
		TotalWords:          len(words),
		TotalSentences:      len(sentences),
	}
}

// countSyllables estimates the syllables in a word by counting transitions
// into vowels, with a correction for a trailing silent 'e'. Each word
// counts as at least one syllable. Deliberately approximate; kept in sync
// with the scoring contract rather than a dictionary.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	const vowels = "aeiouy"

	count := 0
	prevWasVowel := false
	for _, char := range word {
		isVowel := strings.ContainsRune(vowels, char)
		if isVowel && !prevWasVowel {
			count++
		}
		prevWasVowel = isVowel
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}

	if count < 1 {
		return 1
	}
	return count
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
