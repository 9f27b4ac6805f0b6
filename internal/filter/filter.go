// Package filter narrows an already-fetched listing by a free-text query.
package filter

import (
	"regexp"
	"strconv"
	"strings"

	"pokedex/viewer/internal/domain"
)

// Matches refs like https://pokeapi.co/api/v2/pokemon/25/ or .../pokemon/25
var trailingIDRegex = regexp.MustCompile(`^.*/(\d+)/?$`)

// Filter returns the entries matching query, in input order. A blank query
// returns entries itself. A query that parses as a base-10 integer matches on
// the ID embedded in each entry's detail ref; anything else is a
// case-insensitive substring match on the name.
func Filter(entries []domain.EntrySummary, query string) []domain.EntrySummary {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}

	if id, err := strconv.Atoi(q); err == nil {
		return keep(entries, func(e domain.EntrySummary) bool {
			entryID, ok := ExtractID(e.DetailRef)
			return ok && entryID == id
		})
	}

	return keep(entries, func(e domain.EntrySummary) bool {
		return strings.Contains(strings.ToLower(e.Name), q)
	})
}

// ExtractID returns the trailing numeric path segment of ref.
func ExtractID(ref string) (int, bool) {
	matches := trailingIDRegex.FindStringSubmatch(ref)
	if len(matches) < 2 {
		return 0, false
	}

	id, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

func keep(entries []domain.EntrySummary, match func(domain.EntrySummary) bool) []domain.EntrySummary {
	out := make([]domain.EntrySummary, 0, len(entries))
	for _, e := range entries {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}
