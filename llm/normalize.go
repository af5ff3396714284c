package llm

import "strings"

// Typographic characters that render badly in terminals, mapped to ASCII
// equivalents. Accented characters are deliberately left alone so
// Portuguese and Spanish place names stay authentic.
var normalizeReplacer = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...", // horizontal ellipsis
	" ", " ", // non-breaking space
	"€", "EUR", // euro sign, converted for wider compatibility
)

// NormalizeText replaces problematic typographic Unicode characters with
// ASCII equivalents while preserving accented letters.
func NormalizeText(text string) string {
	return normalizeReplacer.Replace(text)
}
