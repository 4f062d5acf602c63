// internal/catalog/ranking.go
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aigrocery/catalog-backend/internal/models"
	"github.com/aigrocery/catalog-backend/internal/overlay"
)

// FilterByCategory keeps entries whose category matches exactly.
// "All" is the identity filter. No partial or fuzzy matching.
func FilterByCategory(entries []models.CatalogEntry, category string) []models.CatalogEntry {
	if category == models.CategoryAll {
		return entries
	}
	out := make([]models.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Search keeps entries whose title, description or category contains the
// query, case-insensitively. An empty query matches everything; callers that
// want "no results" semantics for it must special-case upstream.
func Search(entries []models.CatalogEntry, query string) []models.CatalogEntry {
	q := strings.ToLower(query)
	out := make([]models.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Category), q) {
			out = append(out, e)
		}
	}
	return out
}

// Sort returns a new sequence ordered by the given method. The input is never
// mutated. Sorting is stable, so ties keep seed order. An unknown method
// returns the input order unchanged; that fallback is deliberate, not an
// error to propagate.
func (s *Service) Sort(entries []models.CatalogEntry, method models.SortMethod) []models.CatalogEntry {
	out := make([]models.CatalogEntry, len(entries))
	copy(out, entries)

	switch method {
	case models.SortAlphabetical:
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case models.SortMostVisited, models.SortMostPlayed:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UsageCount > out[j].UsageCount
		})
	case models.SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case models.SortHighestRated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case models.SortMostCommented:
		// Comment lists are written through independently, so counts are
		// re-read from the overlay store at sort time. A stale in-memory
		// count here is a correctness bug, not a cosmetic one.
		counts := make(map[string]int, len(out))
		for _, e := range out {
			counts[e.ID] = len(s.storedComments(e.ID))
		}
		sort.SliceStable(out, func(i, j int) bool {
			return counts[out[i].ID] > counts[out[j].ID]
		})
	}

	return out
}

// Browse applies the composition rule: filter first, then sort. An empty
// method falls back to the entity's default sort.
func (s *Service) Browse(category, query string, method models.SortMethod) []models.CatalogEntry {
	if method == "" {
		method = s.opts.DefaultSort
	}

	entries := s.Entries()
	if query != "" {
		entries = Search(entries, query)
	} else if category != "" {
		entries = FilterByCategory(entries, category)
	}
	return s.Sort(entries, method)
}

func (s *Service) storedComments(id string) []models.Comment {
	var stored []models.Comment
	overlay.GetJSON(s.store, s.keys.Comments(id), &stored)
	return stored
}
