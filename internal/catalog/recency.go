// internal/catalog/recency.go
package catalog

import (
	"fmt"

	"github.com/aigrocery/catalog-backend/internal/models"
	"github.com/aigrocery/catalog-backend/internal/overlay"
)

// RecordVisit moves the entry to the front of the recently-visited list and
// increments its usage counter. The list is de-duplicated: a repeat visit
// moves the id to the front rather than adding it twice.
//
// When CountDebounce is set, the counter increments at most once per entry
// per window; increments inside the window are simply dropped. That is a
// rate limit, not a lock: it keeps rapid reloads of an embedded game frame
// from inflating play counts.
func (s *Service) RecordVisit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrNotFound, s.opts.Entity, id)
	}

	var ids []string
	overlay.GetJSON(s.store, s.keys.RecentVisits(), &ids)
	next := make([]string, 0, len(ids)+1)
	next = append(next, id)
	for _, prev := range ids {
		if prev != id {
			next = append(next, prev)
		}
	}
	if len(next) > s.opts.RecentLimit {
		next = next[:s.opts.RecentLimit]
	}
	if err := overlay.SetJSON(s.store, s.keys.RecentVisits(), next); err != nil {
		return err
	}

	if s.opts.CountDebounce > 0 {
		nowMillis := s.now().UnixMilli()
		last, ok := overlay.GetInt(s.store, s.keys.CounterLastUpdate(id))
		if ok && nowMillis-last < s.opts.CountDebounce.Milliseconds() {
			return nil
		}
		if err := overlay.SetInt(s.store, s.keys.CounterLastUpdate(id), nowMillis); err != nil {
			return err
		}
	}

	key := s.keys.Counter(s.opts.CounterNoun, id)
	count, _ := overlay.GetInt(s.store, key)
	count++
	if err := overlay.SetInt(s.store, key, count); err != nil {
		return err
	}
	e.UsageCount = count
	return nil
}

// RecentEntries resolves the recently-visited id list to entries, skipping
// ids that no longer resolve. A first-time user with an empty list gets the
// most popular entries instead of an empty page.
func (s *Service) RecentEntries() []models.CatalogEntry {
	s.mu.RLock()
	var ids []string
	overlay.GetJSON(s.store, s.keys.RecentVisits(), &ids)

	if len(ids) == 0 {
		entries := s.snapshot()
		s.mu.RUnlock()
		popular := s.Sort(entries, models.SortMostVisited)
		if len(popular) > s.opts.RecentLimit {
			popular = popular[:s.opts.RecentLimit]
		}
		return popular
	}

	out := make([]models.CatalogEntry, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.byID[id]; ok {
			out = append(out, *e)
		}
	}
	s.mu.RUnlock()
	return out
}
