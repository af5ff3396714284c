package evaluator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EvaluateCharacterLimits checks every extracted section that has a
// configured budget. Counts are taken on the markup-stripped, trimmed
// content and measure characters, not bytes, so accented text is not
// penalized. Sections without a budget, or absent from the map, are
// omitted; their absence is the structure checker's concern, not a
// limit failure.
func (e *Evaluator) EvaluateCharacterLimits(sections SectionMap) map[string]LimitResult {
	results := make(map[string]LimitResult)

	for section, content := range sections {
		limit, ok := e.cfg.SectionLimits[section]
		if !ok {
			continue
		}

		count := utf8.RuneCountInString(strings.TrimSpace(stripTags(content)))

		var compliant bool
		var status string
		if limit.Min > 0 {
			compliant = count >= limit.Min && count <= limit.Max
			status = fmt.Sprintf("%d chars (target: %d-%d)", count, limit.Min, limit.Max)
		} else {
			compliant = count <= limit.Max
			status = fmt.Sprintf("%d/%d chars", count, limit.Max)
		}

		results[section] = LimitResult{
			CharCount: count,
			Compliant: compliant,
			Status:    status,
		}
	}

	return results
}
