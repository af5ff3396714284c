package evaluator

import (
	"fmt"
	"regexp"
)

// Evaluator scores marked-up listing documents for structure, SEO signal
// strength and readability. All patterns are compiled once at construction;
// Evaluate itself performs no I/O and holds no mutable state, so a single
// instance is safe for concurrent use across documents.
type Evaluator struct {
	cfg      Config
	keywords map[Language][]*regexp.Regexp
	markers  map[string]*regexp.Regexp
	blocks   []compiledBlock
}

type compiledBlock struct {
	name    string
	pattern *regexp.Regexp
}

// New compiles the configuration's pattern tables into an Evaluator. It
// fails fast on any invalid pattern rather than degrading at evaluation
// time.
func New(cfg Config) (*Evaluator, error) {
	e := &Evaluator{
		cfg:      cfg,
		keywords: make(map[Language][]*regexp.Regexp, len(cfg.KeywordPatterns)),
		markers:  make(map[string]*regexp.Regexp, len(cfg.SectionMarkers)),
		blocks:   make([]compiledBlock, 0, len(cfg.RequiredBlocks)),
	}

	for lang, patterns := range cfg.KeywordPatterns {
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, pattern := range patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid keyword pattern %q for language %s: %w", pattern, lang, err)
			}
			compiled = append(compiled, re)
		}
		e.keywords[lang] = compiled
	}

	for section, pattern := range cfg.SectionMarkers {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid section marker for %s: %w", section, err)
		}
		e.markers[section] = re
	}

	for _, block := range cfg.RequiredBlocks {
		re, err := regexp.Compile(block.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid block pattern for %s: %w", block.Name, err)
		}
		e.blocks = append(e.blocks, compiledBlock{name: block.Name, pattern: re})
	}

	return e, nil
}

// Config returns the configuration the evaluator was built with
func (e *Evaluator) Config() Config {
	return e.cfg
}

// Evaluate produces the full quality report for one document. Malformed or
// incomplete input degrades to low sub-scores instead of failing; an
// overall score of 0 is a valid result.
func (e *Evaluator) Evaluate(content string, language Language) *Report {
	sections := e.ExtractSections(content)

	readability := e.EvaluateReadability(content)
	seo := e.EvaluateSeoKeywords(content, language)
	limits := e.EvaluateCharacterLimits(sections)
	structure := e.EvaluateStructure(content)

	return &Report{
		OverallScore:    e.overallScore(readability, seo, limits, structure),
		Readability:     readability,
		Seo:             seo,
		CharacterLimits: limits,
		Structure:       structure,
		SectionsFound:   len(sections),
	}
}
