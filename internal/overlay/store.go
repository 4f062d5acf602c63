// internal/overlay/store.go
package overlay

import "fmt"

// Store is the durable key-value layer that carries user-generated state
// (ratings, usage counters, comment lists, the recency list) across sessions
// on top of the static seed catalog. Values are strings holding either plain
// numbers or JSON. A write must be observable by a subsequent Get before
// Set returns.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Keys builds the persisted key layout for one entity namespace
// ("tool" or "game").
type Keys struct {
	Entity string
}

func (k Keys) Rating(id string) string {
	return fmt.Sprintf("%s-rating-%s", k.Entity, id)
}

func (k Keys) TotalRatings(id string) string {
	return fmt.Sprintf("%s-total-ratings-%s", k.Entity, id)
}

func (k Keys) Comments(id string) string {
	return fmt.Sprintf("%s_%s_comments", k.Entity, id)
}

// Counter is the usage-counter key: noun is "visits" for tools and
// "plays" for games.
func (k Keys) Counter(noun, id string) string {
	return fmt.Sprintf("%s-%s-%s", k.Entity, noun, id)
}

// CounterLastUpdate tracks the debounce window for play counting.
func (k Keys) CounterLastUpdate(id string) string {
	return fmt.Sprintf("%s-plays-last-update-%s", k.Entity, id)
}

// StarSelection is the per-session "my current star selection" key for one
// entry; callers prepend their session scope.
func (k Keys) StarSelection(id string) string {
	return fmt.Sprintf("%s_%s_rating", k.Entity, id)
}

// RecentVisits holds the recently-visited entry id list. Each catalog keeps
// its own list; the two instances share one store, so the key must carry the
// entity namespace or a game play would surface in the tools list.
func (k Keys) RecentVisits() string {
	return fmt.Sprintf("%s_recent_visits", k.Entity)
}
