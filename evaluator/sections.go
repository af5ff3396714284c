package evaluator

// ExtractSections pulls the named fragments out of a document using the
// configured markers. Content is recorded verbatim, markup included;
// stripping happens downstream per consumer. A missing marker simply leaves
// the key absent, it is not an error.
func (e *Evaluator) ExtractSections(content string) SectionMap {
	sections := make(SectionMap, len(e.markers))
	for name, marker := range e.markers {
		if inner, ok := firstCapture(marker, content); ok {
			sections[name] = inner
		}
	}
	return sections
}
