// Package movies provides the mock metadata tool backing the recommendation
// agent. The catalog is static, so identical keywords always return
// byte-identical output.
package movies

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Name is the primary registration name of the metadata tool.
const Name = "fetch_movie_metadata"

// Alias is the secondary name the tool is commonly registered under.
const Alias = "get_movie_data"

// Movie is one catalog entry returned to the model for analysis.
type Movie struct {
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	IMDBRating  float64 `json:"imdb_rating"`
	RuntimeMins int     `json:"runtime_mins"`
}

var catalog = map[string][]Movie{
	"sci-fi": {
		{Title: "Space Odyssey 2001", Genre: "Sci-Fi/Drama", IMDBRating: 8.3, RuntimeMins: 149},
		{Title: "Robot Detective", Genre: "Sci-Fi/Thriller", IMDBRating: 7.5, RuntimeMins: 115},
		{Title: "The Infinite Loop", Genre: "Sci-Fi/Mystery", IMDBRating: 9.1, RuntimeMins: 180},
	},
	"action": {
		{Title: "The Fast Getaway", Genre: "Action/Thriller", IMDBRating: 7.8, RuntimeMins: 95},
		{Title: "Mountain Commandos", Genre: "Action/War", IMDBRating: 8.0, RuntimeMins: 122},
	},
	"comedy": {
		{Title: "The Office Party", Genre: "Comedy/Slice of Life", IMDBRating: 6.9, RuntimeMins: 88},
		{Title: "Wacky Neighbors", Genre: "Comedy/Slapstick", IMDBRating: 7.2, RuntimeMins: 105},
	},
}

// MetadataTool looks up mock movie metadata by preference keyword. It
// implements tool.Tool.
type MetadataTool struct{}

// NewMetadataTool constructs the metadata tool.
func NewMetadataTool() *MetadataTool { return &MetadataTool{} }

// Name implements tool.Tool.
func (t *MetadataTool) Name() string { return Name }

// Description implements tool.Tool.
func (t *MetadataTool) Description() string {
	return "Retrieve movie metadata (title, genre, rating, runtime) for a preference keyword such as 'sci-fi', 'action' or 'comedy'."
}

// Invoke implements tool.Tool. The keyword is case-folded and trimmed, looked
// up as an exact category first, then matched by substring in either
// direction against categories in lexicographic order. A total miss returns a
// descriptive sentence that is deliberately not parseable as a JSON array.
func (t *MetadataTool) Invoke(_ context.Context, input string) string {
	keyword := strings.ToLower(strings.TrimSpace(input))
	if keyword == "" {
		return notFound(input)
	}

	entries, ok := catalog[keyword]
	if !ok {
		for _, key := range Categories() {
			if strings.Contains(keyword, key) || strings.Contains(key, keyword) {
				entries = catalog[key]
				break
			}
		}
	}

	if entries == nil {
		return notFound(input)
	}

	b, err := json.Marshal(entries)
	if err != nil {
		return notFound(input)
	}
	return string(b)
}

// Categories returns the known category keys in lexicographic order, which is
// also the tie-break order for the substring fallback.
func Categories() []string {
	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func notFound(keyword string) string {
	return fmt.Sprintf("No movies found matching %q. Known categories: %s.", keyword, strings.Join(Categories(), ", "))
}
