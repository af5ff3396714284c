package generator

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient returns canned content and records the prompts it was given
type mockClient struct {
	prompts   []string
	responses map[string]string
}

func (m *mockClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	for needle, response := range m.responses {
		if strings.Contains(prompt, needle) {
			return response, nil
		}
	}
	return fmt.Sprintf("generated content %d", len(m.prompts)), nil
}

func (m *mockClient) Model() string { return "mock" }

func validListingJSON() []byte {
	return []byte(`{
		"location": "Lisbon",
		"features": ["3 bedrooms", "river view"],
		"price": "450000 EUR",
		"language": "en"
	}`)
}

func TestParseListing_Defaults(t *testing.T) {
	gen, err := New(&mockClient{})
	require.NoError(t, err)

	listing, err := gen.ParseListing(validListingJSON())
	require.NoError(t, err)

	assert.Equal(t, "Lisbon", listing.Location)
	assert.Equal(t, "friendly", listing.Tone, "missing tone defaults to friendly")
}

func TestParseListing_Invalid(t *testing.T) {
	gen, err := New(&mockClient{})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{"missing location", `{"features":["a"],"price":"1","language":"en"}`},
		{"empty features", `{"location":"Lisbon","features":[],"price":"1","language":"en"}`},
		{"bad language", `{"location":"Lisbon","features":["a"],"price":"1","language":"fr"}`},
		{"bad tone", `{"location":"Lisbon","features":["a"],"price":"1","language":"en","tone":"sarcastic"}`},
		{"not json", `{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.ParseListing([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestGenerateSection_WrapsContent(t *testing.T) {
	mock := &mockClient{responses: map[string]string{
		"page title": "Fine flat in Lisbon",
	}}
	gen, err := New(mock)
	require.NoError(t, err)

	listing, err := gen.ParseListing(validListingJSON())
	require.NoError(t, err)

	wrapped, err := gen.GenerateSection(context.Background(), "title", listing)
	require.NoError(t, err)

	assert.Equal(t, "<title>Fine flat in Lisbon</title>", wrapped)
	require.Len(t, mock.prompts, 1)
	assert.Contains(t, mock.prompts[0], "Lisbon")
	assert.Contains(t, mock.prompts[0], "450000 EUR")
	assert.Contains(t, mock.prompts[0], "river view")
}

func TestGenerate_AssemblesAllSectionsInOrder(t *testing.T) {
	gen, err := New(&mockClient{})
	require.NoError(t, err)

	listing, err := gen.ParseListing(validListingJSON())
	require.NoError(t, err)

	document, err := gen.Generate(context.Background(), listing)
	require.NoError(t, err)

	lines := strings.Split(document, "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "<title>"))
	assert.True(t, strings.HasPrefix(lines[1], `<meta name="description"`))
	assert.True(t, strings.HasPrefix(lines[2], "<h1>"))
	assert.True(t, strings.HasPrefix(lines[3], `<section id="description">`))
	assert.True(t, strings.HasPrefix(lines[4], `<ul id="key-features">`))
	assert.True(t, strings.HasPrefix(lines[5], `<section id="neighborhood">`))
	assert.True(t, strings.HasPrefix(lines[6], `<p class="call-to-action">`))
}

func TestGenerateHTMLDocument(t *testing.T) {
	gen, err := New(&mockClient{})
	require.NoError(t, err)

	listing, err := gen.ParseListing(validListingJSON())
	require.NoError(t, err)

	document, err := gen.GenerateHTMLDocument(context.Background(), listing)
	require.NoError(t, err)

	assert.Contains(t, document, "<!DOCTYPE html>")
	assert.Contains(t, document, `<html lang="en">`)
	assert.Contains(t, document, `<meta charset="UTF-8">`)
}

func TestWrapSection_UnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "raw", wrapSection("unknown", "raw"))
}
