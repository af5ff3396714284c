package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_AssembledDocument(t *testing.T) {
	mock := &mockClient{responses: map[string]string{
		"page title": "Fine flat in Lisbon",
	}}
	gen, err := New(mock)
	require.NoError(t, err)

	listing, err := gen.ParseListing(validListingJSON())
	require.NoError(t, err)

	document, err := gen.Generate(context.Background(), listing)
	require.NoError(t, err)

	summary, err := Summarize(document)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.BlocksPresent)
	assert.Equal(t, "Fine flat in Lisbon", summary.Title)
	assert.Equal(t, 4, summary.WordCounts["title"])
}

func TestSummarize_PartialDocument(t *testing.T) {
	summary, err := Summarize("<title>Flat in Porto</title><h1>A flat</h1>")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.BlocksPresent)
	assert.Equal(t, "Flat in Porto", summary.Title)
	assert.Equal(t, 2, summary.WordCounts["h1"])
	assert.NotContains(t, summary.WordCounts, "description")
}

func TestSummarize_EmptyDocument(t *testing.T) {
	summary, err := Summarize("")
	require.NoError(t, err)

	assert.Equal(t, 0, summary.BlocksPresent)
	assert.Empty(t, summary.Title)
}
