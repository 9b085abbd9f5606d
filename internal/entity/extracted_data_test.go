package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtractionRecord_OnlyURLSet(t *testing.T) {
	rec := NewExtractionRecord("https://example.com")

	assert.Equal(t, "https://example.com", rec.RequestedURL)
	assert.Nil(t, rec.Title)
	assert.Nil(t, rec.ImageURLs)
	assert.False(t, rec.IsCategorized())
}

func TestExtractionRecord_IsFailed(t *testing.T) {
	tests := []struct {
		name  string
		title *string
		want  bool
	}{
		{name: "absent title", title: nil, want: true},
		{name: "plain title", title: strPtr("Acme Co"), want: false},
		{name: "empty title", title: strPtr(""), want: false},
		{name: "marker prefix", title: strPtr("Error: Could not fetch content - timeout"), want: true},
		{name: "marker lower case anywhere", title: strPtr("Site error: maintenance"), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &ExtractionRecord{Title: tt.title}
			assert.Equal(t, tt.want, rec.IsFailed())
		})
	}
}

func TestExtractionRecord_Markers(t *testing.T) {
	rec := NewExtractionRecord("https://example.com")
	rec.MarkFetchFailed("connection refused")
	assert.Equal(t, "Error: Could not fetch content - connection refused", rec.TitleOrEmpty())

	rec.MarkExtractionFailed("boom")
	assert.Equal(t, "Error: Unexpected error during extraction - boom", rec.TitleOrEmpty())
	assert.True(t, rec.IsFailed())
}

func TestExtractionRecord_JSONFieldNames(t *testing.T) {
	rec := NewExtractionRecord("https://example.com")
	rec.SetTitle("Acme Co")
	count := 3
	rec.ImageCount = &count

	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "https://example.com", decoded["requestedUrl"])
	assert.Equal(t, "Acme Co", decoded["title"])
	assert.EqualValues(t, 3, decoded["imageCount"])
	assert.Contains(t, decoded, "hasFavicon")
	assert.Nil(t, decoded["hasFavicon"])
}

func TestNewFindingsReport_EncodesEmptyLists(t *testing.T) {
	raw, err := json.Marshal(NewFindingsReport())
	require.NoError(t, err)
	assert.JSONEq(t, `{"pros":[],"cons":[],"opportunities":[],"redFlags":[],"summary":""}`, string(raw))
}

func strPtr(s string) *string { return &s }
