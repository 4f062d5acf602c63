// internal/overlay/overlay_test.go
package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", "v"))
	got, ok, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", got)

	require.NoError(t, store.Set("k", "v2"))
	got, _, _ = store.Get("k")
	assert.Equal(t, "v2", got)

	require.NoError(t, store.Delete("k"))
	_, ok, err = store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_DeleteMissingIsNoop(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Delete("never-set"))
}

func TestTypedAccessors_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, SetFloat(store, "f", 4.25))
	f, ok := GetFloat(store, "f")
	require.True(t, ok)
	assert.Equal(t, 4.25, f)

	require.NoError(t, SetInt(store, "i", 42))
	i, ok := GetInt(store, "i")
	require.True(t, ok)
	assert.Equal(t, int64(42), i)

	require.NoError(t, SetJSON(store, "j", []string{"a", "b"}))
	var list []string
	require.True(t, GetJSON(store, "j", &list))
	assert.Equal(t, []string{"a", "b"}, list)
}

func TestTypedAccessors_CorruptValuesDegradeToZero(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set("f", "not-a-number"))
	f, ok := GetFloat(store, "f")
	assert.False(t, ok)
	assert.Zero(t, f)

	require.NoError(t, store.Set("i", "4.5"))
	i, ok := GetInt(store, "i")
	assert.False(t, ok)
	assert.Zero(t, i)

	require.NoError(t, store.Set("j", "{broken"))
	var list []string
	assert.False(t, GetJSON(store, "j", &list))
	assert.Empty(t, list)
}

func TestTypedAccessors_AbsentKeys(t *testing.T) {
	store := NewMemoryStore()

	_, ok := GetFloat(store, "none")
	assert.False(t, ok)
	_, ok = GetInt(store, "none")
	assert.False(t, ok)
	var list []string
	assert.False(t, GetJSON(store, "none", &list))
}

func TestKeys_Layout(t *testing.T) {
	keys := Keys{Entity: "game"}

	assert.Equal(t, "game-rating-7", keys.Rating("7"))
	assert.Equal(t, "game-total-ratings-7", keys.TotalRatings("7"))
	assert.Equal(t, "game_7_comments", keys.Comments("7"))
	assert.Equal(t, "game-plays-7", keys.Counter("plays", "7"))
	assert.Equal(t, "game-plays-last-update-7", keys.CounterLastUpdate("7"))
	assert.Equal(t, "game_7_rating", keys.StarSelection("7"))
	assert.Equal(t, "game_recent_visits", keys.RecentVisits())
}

func TestKeys_EntityIsPartOfTheNamespace(t *testing.T) {
	tool := Keys{Entity: "tool"}
	game := Keys{Entity: "game"}
	assert.NotEqual(t, tool.Rating("1"), game.Rating("1"))
	assert.NotEqual(t, tool.RecentVisits(), game.RecentVisits())
}
