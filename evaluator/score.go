package evaluator

// Readability tier thresholds. At or above the upper threshold the
// category contributes its full weight, at or above the lower one two
// thirds, otherwise one third.
const (
	goodReadability = 60
	fairReadability = 30
)

// overallScore combines the four analyzer outputs into one integer in
// [0,100] using the configured category weights. The final clamp is
// defensive; with the default weights the sum cannot exceed 100.
func (e *Evaluator) overallScore(readability ReadabilityMetrics, seo SeoMetrics, limits map[string]LimitResult, structure StructureResult) int {
	w := e.cfg.Weights
	score := 0.0

	// Coarse banding rather than a linear map: simple tiers on purpose
	switch {
	case readability.Score >= goodReadability:
		score += float64(w.Readability)
	case readability.Score >= fairReadability:
		score += float64(w.Readability) * 2 / 3
	default:
		score += float64(w.Readability) / 3
	}

	// The 0-100 SEO sub-score compresses to the category band by integer
	// division, then caps at the weight
	seoContribution := seo.Score / 4
	if seoContribution > w.Seo {
		seoContribution = w.Seo
	}
	score += float64(seoContribution)

	if len(limits) > 0 {
		compliant := 0
		for _, result := range limits {
			if result.Compliant {
				compliant++
			}
		}
		score += float64(compliant) / float64(len(limits)) * float64(w.Limits)
	}

	if len(structure) > 0 {
		present := 0
		for _, found := range structure {
			if found {
				present++
			}
		}
		score += float64(present) / float64(len(structure)) * float64(w.Structure)
	}

	total := int(score)
	if total > 100 {
		return 100
	}
	if total < 0 {
		return 0
	}
	return total
}
