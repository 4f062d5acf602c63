// internal/catalog/recency_test.go
package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigrocery/catalog-backend/internal/models"
	"github.com/aigrocery/catalog-backend/internal/overlay"
)

func TestRecordVisit_MostRecentFirstDeduplicated(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	for _, id := range []string{"1", "2", "1", "3"} {
		require.NoError(t, svc.RecordVisit(id))
	}

	recent := svc.RecentEntries()
	assert.Equal(t, []string{"3", "1", "2"}, ids(recent))
}

func TestRecordVisit_RepeatStaysInFront(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	require.NoError(t, svc.RecordVisit("2"))
	require.NoError(t, svc.RecordVisit("2"))

	recent := svc.RecentEntries()
	require.NotEmpty(t, recent)
	assert.Equal(t, "2", recent[0].ID)
}

func TestRecordVisit_CapacityBound(t *testing.T) {
	svc, _ := newTestService(t, Options{RecentLimit: 2})

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, svc.RecordVisit(id))
	}

	assert.Equal(t, []string{"3", "2"}, ids(svc.RecentEntries()))
}

func TestRecordVisit_IncrementsUsageCounter(t *testing.T) {
	svc, store := newTestService(t, Options{})

	require.NoError(t, svc.RecordVisit("1"))
	require.NoError(t, svc.RecordVisit("1"))

	entry, err := svc.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), entry.UsageCount)

	keys := overlay.Keys{Entity: "game"}
	persisted, ok := overlay.GetInt(store, keys.Counter("plays", "1"))
	require.True(t, ok)
	assert.Equal(t, int64(2), persisted)
}

func TestRecordVisit_DebounceDropsRapidIncrements(t *testing.T) {
	svc, _ := newTestService(t, Options{CountDebounce: 5 * time.Second})

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	require.NoError(t, svc.RecordVisit("1"))

	// Under 5s later: the counter must not move, the recency list still
	// updates.
	svc.now = func() time.Time { return base.Add(2 * time.Second) }
	require.NoError(t, svc.RecordVisit("1"))

	entry, err := svc.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.UsageCount)

	// Past the window the next visit counts again.
	svc.now = func() time.Time { return base.Add(6 * time.Second) }
	require.NoError(t, svc.RecordVisit("1"))

	entry, err = svc.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), entry.UsageCount)
}

func TestRecordVisit_UnknownEntry(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	assert.ErrorIs(t, svc.RecordVisit("missing"), ErrNotFound)
}

func TestRecentEntries_FallsBackToMostPopular(t *testing.T) {
	svc, _ := newTestService(t, Options{RecentLimit: 2})

	// Nothing visited yet: a first-time user sees the most popular
	// entries, bounded by the same capacity.
	recent := svc.RecentEntries()
	assert.Equal(t, []string{"2", "3"}, ids(recent))
}

func TestRecentEntries_SkipsUnresolvableIDs(t *testing.T) {
	svc, store := newTestService(t, Options{})

	// A stale id from a removed seed entry is skipped, not an error.
	keys := overlay.Keys{Entity: "game"}
	require.NoError(t, overlay.SetJSON(store, keys.RecentVisits(), []string{"ghost", "1"}))
	assert.Equal(t, []string{"1"}, ids(svc.RecentEntries()))
}

func TestRecordVisit_CatalogsKeepSeparateRecentLists(t *testing.T) {
	// Both catalog instances run over one shared store and the seed id
	// spaces overlap, so the recency lists must not bleed into each other:
	// playing game "1" must not surface tool "1" as recently visited.
	store := overlay.NewMemoryStore()

	games := NewService(Options{
		Entity:        "game",
		CounterNoun:   "plays",
		FeedbackStyle: models.FeedbackStyleThread,
		DefaultSort:   models.SortHighestRated,
	}, store)
	require.NoError(t, games.Initialize(testSeeds()))

	tools := NewService(Options{
		Entity:        "tool",
		CounterNoun:   "visits",
		FeedbackStyle: models.FeedbackStyleReview,
		DefaultSort:   models.SortMostVisited,
	}, store)
	require.NoError(t, tools.Initialize(testSeeds()))

	require.NoError(t, games.RecordVisit("1"))

	// The tools list is still empty, so it serves the most-visited
	// fallback rather than the other catalog's history.
	assert.Equal(t, []string{"1"}, ids(games.RecentEntries()))
	assert.Equal(t, []string{"2", "3", "1"}, ids(tools.RecentEntries()))

	require.NoError(t, tools.RecordVisit("2"))
	assert.Equal(t, []string{"2"}, ids(tools.RecentEntries()))
	assert.Equal(t, []string{"1"}, ids(games.RecentEntries()))
}

func TestStarSelection_SessionScoped(t *testing.T) {
	svc, _ := newTestService(t, Options{FeedbackStyle: models.FeedbackStyleThread})

	require.NoError(t, svc.SetStarSelection("sess-a", "1", 4))

	stars, ok := svc.StarSelection("sess-a", "1")
	require.True(t, ok)
	assert.Equal(t, 4, stars)

	// Another session sees nothing.
	_, ok = svc.StarSelection("sess-b", "1")
	assert.False(t, ok)

	require.NoError(t, svc.ClearStarSelection("sess-a", "1"))
	_, ok = svc.StarSelection("sess-a", "1")
	assert.False(t, ok)
}

func TestStarSelection_PersistsAcrossRebuild(t *testing.T) {
	svc, store := newTestService(t, Options{FeedbackStyle: models.FeedbackStyleThread})
	require.NoError(t, svc.SetStarSelection("sess-a", "1", 3))

	// The pick is overlay state like everything else the user touches, so
	// a fresh service over the same store still sees it until cleared.
	fresh := NewService(svc.opts, store)
	require.NoError(t, fresh.Initialize(testSeeds()))

	stars, ok := fresh.StarSelection("sess-a", "1")
	require.True(t, ok)
	assert.Equal(t, 3, stars)

	require.NoError(t, fresh.ClearStarSelection("sess-a", "1"))
	_, ok = svc.StarSelection("sess-a", "1")
	assert.False(t, ok)
}

func TestStarSelection_Validation(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	assert.ErrorIs(t, svc.SetStarSelection("s", "1", 9), ErrValidation)
	assert.ErrorIs(t, svc.SetStarSelection("s", "missing", 3), ErrNotFound)
}
