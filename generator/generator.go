// Package generator renders per-section prompts, calls the text generation
// service and assembles the 7-part listing document.
package generator

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/go-playground/validator/v10"

	"github.com/listing-evaluator/backend/llm"
)

//go:embed prompts/*.tmpl
var promptFiles embed.FS

// Sections in generation order. The evaluator expects all seven blocks.
var sectionOrder = []string{
	"title",
	"meta_description",
	"h1",
	"description",
	"key_features",
	"neighborhood",
	"call_to_action",
}

// Listing is the structured input a document is generated from
type Listing struct {
	Location string   `json:"location" validate:"required"`
	Features []string `json:"features" validate:"required,min=1"`
	Price    string   `json:"price" validate:"required"`
	Language string   `json:"language" validate:"required,oneof=en pt es"`
	Tone     string   `json:"tone" validate:"omitempty,oneof=formal friendly luxury investor"`
}

// Generator produces listing documents from structured input
type Generator struct {
	client    llm.Client
	templates *template.Template
	validate  *validator.Validate
}

// New creates a Generator using the given generation client
func New(client llm.Client) (*Generator, error) {
	templates, err := template.ParseFS(promptFiles, "prompts/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}

	return &Generator{
		client:    client,
		templates: templates,
		validate:  validator.New(),
	}, nil
}

// ParseListing decodes and validates listing input JSON. A missing tone
// defaults to friendly.
func (g *Generator) ParseListing(data []byte) (*Listing, error) {
	var listing Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse listing JSON: %w", err)
	}

	if listing.Tone == "" {
		listing.Tone = "friendly"
	}

	if err := g.validate.Struct(&listing); err != nil {
		return nil, fmt.Errorf("invalid listing input: %w", err)
	}

	return &listing, nil
}

// GenerateSection renders the section's prompt template, generates the
// content and wraps it in the section's HTML tags.
func (g *Generator) GenerateSection(ctx context.Context, section string, listing *Listing) (string, error) {
	var prompt strings.Builder
	if err := g.templates.ExecuteTemplate(&prompt, section+".tmpl", listing); err != nil {
		return "", fmt.Errorf("failed to render prompt for %s: %w", section, err)
	}

	content, err := g.client.GenerateContent(ctx, prompt.String())
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", section, err)
	}

	return wrapSection(section, content), nil
}

// Generate produces the complete 7-part document, sections joined by
// newlines in the fixed order.
func (g *Generator) Generate(ctx context.Context, listing *Listing) (string, error) {
	parts := make([]string, 0, len(sectionOrder))
	for _, section := range sectionOrder {
		wrapped, err := g.GenerateSection(ctx, section, listing)
		if err != nil {
			return "", err
		}
		parts = append(parts, wrapped)
	}

	return strings.Join(parts, "\n"), nil
}

// GenerateHTMLDocument wraps the assembled content in a complete UTF-8
// HTML document so accented characters display correctly in browsers.
func (g *Generator) GenerateHTMLDocument(ctx context.Context, listing *Listing) (string, error) {
	content, err := g.Generate(ctx, listing)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="%s">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
%s
</head>
<body>
    <!-- Content is in the head for SEO optimization -->
</body>
</html>`, listing.Language, content), nil
}

// wrapSection wraps generated content in the appropriate HTML tags for
// each section. Unknown sections pass through unwrapped.
func wrapSection(section, content string) string {
	switch section {
	case "title":
		return fmt.Sprintf("<title>%s</title>", content)
	case "meta_description":
		return fmt.Sprintf(`<meta name="description" content="%s">`, content)
	case "h1":
		return fmt.Sprintf("<h1>%s</h1>", content)
	case "description":
		return fmt.Sprintf(`<section id="description">%s</section>`, content)
	case "key_features":
		return fmt.Sprintf(`<ul id="key-features">%s</ul>`, content)
	case "neighborhood":
		return fmt.Sprintf(`<section id="neighborhood">%s</section>`, content)
	case "call_to_action":
		return fmt.Sprintf(`<p class="call-to-action">%s</p>`, content)
	default:
		return content
	}
}
