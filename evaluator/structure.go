package evaluator

// EvaluateStructure reports the presence of each required structural block.
// Every configured block always has an entry, true or false; a missing
// block lowers the structure sub-score but is never an error.
func (e *Evaluator) EvaluateStructure(content string) StructureResult {
	results := make(StructureResult, len(e.blocks))
	for _, block := range e.blocks {
		results[block.name] = block.pattern.MatchString(content)
	}
	return results
}
