package generator

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Summary describes an assembled document for CLI and log output
type Summary struct {
	Title         string         `json:"title"`
	BlocksPresent int            `json:"blocksPresent"`
	WordCounts    map[string]int `json:"wordCounts"`
}

// Selectors for the visible blocks of the document. The meta description
// is attribute-only and handled separately.
var blockSelectors = map[string]string{
	"title":          "title",
	"h1":             "h1",
	"description":    "section#description",
	"key_features":   "ul#key-features",
	"neighborhood":   "section#neighborhood",
	"call_to_action": "p.call-to-action",
}

// Summarize parses an assembled document and reports which blocks are
// present along with their visible word counts.
func Summarize(document string) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		WordCounts: make(map[string]int, len(blockSelectors)+1),
	}

	for name, selector := range blockSelectors {
		selection := doc.Find(selector).First()
		if selection.Length() == 0 {
			continue
		}
		summary.BlocksPresent++
		summary.WordCounts[name] = len(strings.Fields(selection.Text()))
	}

	summary.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if content, exists := doc.Find(`meta[name="description"]`).Attr("content"); exists {
		summary.BlocksPresent++
		summary.WordCounts["meta_description"] = len(strings.Fields(content))
	}

	return summary, nil
}
