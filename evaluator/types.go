package evaluator

// Language selects the keyword pattern table used for SEO matching
type Language string

// Supported content languages
const (
	LanguageEnglish    Language = "en"
	LanguagePortuguese Language = "pt"
	LanguageSpanish    Language = "es"
)

// Report is the complete evaluation of one document
type Report struct {
	OverallScore    int                    `json:"overallScore"`
	Readability     ReadabilityMetrics     `json:"readability"`
	Seo             SeoMetrics             `json:"seo"`
	CharacterLimits map[string]LimitResult `json:"characterLimits"`
	Structure       StructureResult        `json:"structureCompliance"`
	SectionsFound   int                    `json:"sectionsFound"`
}

// ReadabilityMetrics holds sentence, word and syllable statistics plus the
// derived reading-ease score
type ReadabilityMetrics struct {
	Score               float64 `json:"score"`
	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`
	AvgSyllablesPerWord float64 `json:"avgSyllablesPerWord"`
	TotalWords          int     `json:"totalWords"`
	TotalSentences      int     `json:"totalSentences"`
}

// SeoMetrics holds keyword matching results for one language
type SeoMetrics struct {
	FoundKeywords  []string `json:"foundKeywords"`
	KeywordCount   int      `json:"keywordCount"`
	KeywordDensity float64  `json:"keywordDensity"`
	Score          int      `json:"score"`
}

// LimitResult is the character-limit outcome for a single section
type LimitResult struct {
	CharCount int    `json:"charCount"`
	Compliant bool   `json:"compliant"`
	Status    string `json:"status"`
}

// StructureResult maps each required structural block name to its presence
type StructureResult map[string]bool

// SectionMap holds the fragments extracted from a document, keyed by
// section name. Keys are absent when the marker was not found.
type SectionMap map[string]string
