package movies

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataTool_ExactMatch(t *testing.T) {
	tl := NewMetadataTool()

	out := tl.Invoke(context.Background(), "sci-fi")

	var entries []Movie
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "Space Odyssey 2001", entries[0].Title)
	assert.Equal(t, 149, entries[0].RuntimeMins)
	assert.Equal(t, "The Infinite Loop", entries[2].Title)
	assert.Equal(t, 180, entries[2].RuntimeMins)
}

func TestMetadataTool_NormalizesKeyword(t *testing.T) {
	tl := NewMetadataTool()
	ctx := context.Background()

	assert.Equal(t, tl.Invoke(ctx, "sci-fi"), tl.Invoke(ctx, "  SCI-FI  "))
}

func TestMetadataTool_SubstringFallback(t *testing.T) {
	tl := NewMetadataTool()
	ctx := context.Background()

	tests := []struct {
		name      string
		keyword   string
		wantTitle string
	}{
		{name: "category contained in keyword", keyword: "some sci-fi movies", wantTitle: "Space Odyssey 2001"},
		{name: "keyword contained in category", keyword: "act", wantTitle: "The Fast Getaway"},
		{name: "comedy fragment", keyword: "com", wantTitle: "The Office Party"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tl.Invoke(ctx, tt.keyword)

			var entries []Movie
			require.NoError(t, json.Unmarshal([]byte(out), &entries))
			assert.Equal(t, tt.wantTitle, entries[0].Title)
		})
	}
}

func TestMetadataTool_NotFound(t *testing.T) {
	tl := NewMetadataTool()

	out := tl.Invoke(context.Background(), "horror")

	// Miss output must not parse as a JSON array.
	var entries []Movie
	assert.Error(t, json.Unmarshal([]byte(out), &entries))
	assert.Contains(t, out, "horror")
	assert.Contains(t, out, "sci-fi")
}

func TestMetadataTool_EmptyKeyword(t *testing.T) {
	tl := NewMetadataTool()

	out := tl.Invoke(context.Background(), "   ")

	var entries []Movie
	assert.Error(t, json.Unmarshal([]byte(out), &entries))
	assert.Contains(t, out, "No movies found")
}

func TestMetadataTool_Deterministic(t *testing.T) {
	tl := NewMetadataTool()
	ctx := context.Background()

	for _, keyword := range []string{"sci-fi", "action", "comedy", "horror", "fi"} {
		first := tl.Invoke(ctx, keyword)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, tl.Invoke(ctx, keyword), keyword)
		}
	}
}

func TestCategoriesSorted(t *testing.T) {
	assert.Equal(t, []string{"action", "comedy", "sci-fi"}, Categories())
}
