// internal/catalog/ranking_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigrocery/catalog-backend/internal/models"
	"github.com/aigrocery/catalog-backend/internal/overlay"
)

func ids(entries []models.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestFilterByCategory_AllIsIdentity(t *testing.T) {
	entries := testSeeds()
	filtered := FilterByCategory(entries, models.CategoryAll)
	assert.Equal(t, entries, filtered)
}

func TestFilterByCategory_ExactMatch(t *testing.T) {
	filtered := FilterByCategory(testSeeds(), "Casual")
	assert.Equal(t, []string{"1", "3"}, ids(filtered))

	// Case-sensitive, no partial matching.
	assert.Empty(t, FilterByCategory(testSeeds(), "casual"))
	assert.Empty(t, FilterByCategory(testSeeds(), "Cas"))
}

func TestSearch_MatchesAnyField(t *testing.T) {
	entries := testSeeds()

	assert.Equal(t, []string{"1"}, ids(Search(entries, "BANANA")))
	assert.Equal(t, []string{"2"}, ids(Search(entries, "orchard")))
	assert.Equal(t, []string{"2"}, ids(Search(entries, "adventure")))
	assert.Empty(t, ids(Search(entries, "zebra")))
}

func TestSearch_EmptyQueryReturnsEverything(t *testing.T) {
	entries := testSeeds()
	assert.Len(t, Search(entries, ""), len(entries))
}

func TestSort_Alphabetical(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	sorted := svc.Sort(svc.Entries(), models.SortAlphabetical)
	// Collation is locale-aware, so "apple adventure" sorts before
	// "Banana Blast" despite the lowercase first letter.
	assert.Equal(t, []string{"2", "1", "3"}, ids(sorted))

	// Idempotent: sorting a sorted sequence changes nothing.
	assert.Equal(t, sorted, svc.Sort(sorted, models.SortAlphabetical))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	entries := svc.Entries()
	before := ids(entries)
	svc.Sort(entries, models.SortAlphabetical)
	assert.Equal(t, before, ids(entries))
}

func TestSort_ByUsageAndDateAndRating(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	entries := svc.Entries()

	assert.Equal(t, []string{"2", "3", "1"}, ids(svc.Sort(entries, models.SortMostPlayed)))
	assert.Equal(t, []string{"2", "3", "1"}, ids(svc.Sort(entries, models.SortMostVisited)))
	assert.Equal(t, []string{"2", "3", "1"}, ids(svc.Sort(entries, models.SortByDate)))
	assert.Equal(t, []string{"3", "1", "2"}, ids(svc.Sort(entries, models.SortHighestRated)))
}

func TestSort_TiesKeepSeedOrder(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	// All ratings are tied at zero except entry 3, so 1 and 2 keep their
	// seed order behind it.
	sorted := svc.Sort(svc.Entries(), models.SortHighestRated)
	assert.Equal(t, []string{"3", "1", "2"}, ids(sorted))
}

func TestSort_UnknownMethodReturnsInputOrder(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	entries := svc.Entries()
	assert.Equal(t, ids(entries), ids(svc.Sort(entries, "definitely-not-a-sort")))
}

func TestSort_MostCommentedReadsThroughOverlay(t *testing.T) {
	svc, store := newTestService(t, Options{})

	// Write a comment list behind the service's back, as another tab
	// would. The in-memory entry still has zero comments; the sort must
	// see the persisted count anyway.
	keys := overlay.Keys{Entity: "game"}
	err := overlay.SetJSON(store, keys.Comments("2"), []models.Comment{
		{ID: "c1", EntryID: "2", Author: "a", Content: "x"},
		{ID: "c2", EntryID: "2", Author: "b", Content: "y"},
	})
	require.NoError(t, err)

	sorted := svc.Sort(svc.Entries(), models.SortMostCommented)
	assert.Equal(t, "2", sorted[0].ID)
}

func TestBrowse_FiltersBeforeSorting(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	result := svc.Browse("Casual", "", models.SortMostPlayed)
	assert.Equal(t, []string{"3", "1"}, ids(result))

	// Search takes precedence over category, default sort fills in.
	result = svc.Browse("Casual", "cherry", "")
	assert.Equal(t, []string{"3"}, ids(result))
}
