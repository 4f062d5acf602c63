// internal/catalog/service.go
package catalog

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aigrocery/catalog-backend/internal/models"
	"github.com/aigrocery/catalog-backend/internal/overlay"
)

// Options configures one catalog instance. The tools directory and the games
// portal are two instances of the same engine with different namespaces,
// counter nouns and feedback styles.
type Options struct {
	Entity        string // overlay key namespace: "tool" or "game"
	CounterNoun   string // "visits" or "plays"
	FeedbackStyle models.FeedbackStyle
	DefaultSort   models.SortMethod
	Categories    []string

	// RecentLimit bounds the recently-visited list.
	RecentLimit int

	// CountDebounce suppresses usage-counter increments closer together than
	// this window (zero disables). Used for embedded game sessions where
	// rapid frame reloads would otherwise inflate play counts.
	CountDebounce time.Duration
}

// Service owns the in-memory catalog state for one entity and every mutation
// of it. All user-generated state is written through to the overlay store
// before the in-memory record is updated, so a restart rehydrates the exact
// same state.
type Service struct {
	opts  Options
	keys  overlay.Keys
	store overlay.Store

	mu          sync.RWMutex
	entries     []*models.CatalogEntry // seed order
	byID        map[string]*models.CatalogEntry
	initialized bool

	now func() time.Time
	log *logrus.Entry
}

func NewService(opts Options, store overlay.Store) *Service {
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = 8
	}
	return &Service{
		opts:  opts,
		keys:  overlay.Keys{Entity: opts.Entity},
		store: store,
		byID:  make(map[string]*models.CatalogEntry),
		now:   time.Now,
		log:   logrus.WithField("entity", opts.Entity),
	}
}

// Initialize merges the static seed records with persisted overlay values and
// becomes the authoritative in-memory state. It must run exactly once per
// process lifetime; a second call is rejected.
func (s *Service) Initialize(seeds []models.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return ErrAlreadyInitialized
	}

	for _, seed := range seeds {
		entry := seed
		entry.Kind = s.kind()

		if rating, ok := overlay.GetFloat(s.store, s.keys.Rating(entry.ID)); ok {
			entry.Rating = rating
		}
		if total, ok := overlay.GetInt(s.store, s.keys.TotalRatings(entry.ID)); ok {
			entry.TotalRatings = int(total)
		}
		if count, ok := overlay.GetInt(s.store, s.keys.Counter(s.opts.CounterNoun, entry.ID)); ok {
			entry.UsageCount = count
		}
		var stored []models.Comment
		if overlay.GetJSON(s.store, s.keys.Comments(entry.ID), &stored) {
			entry.Comments = s.displayOrder(stored)
		}

		e := entry
		s.entries = append(s.entries, &e)
		s.byID[e.ID] = &e
	}

	s.initialized = true
	s.log.WithField("entries", len(s.entries)).Info("Catalog initialized")
	return nil
}

// Entries returns the full catalog in seed order. Callers get copies; the
// service keeps ownership of the mutable records.
func (s *Service) Entries() []models.CatalogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// GetByID resolves a single entry. ErrNotFound is an expected outcome for a
// stale or mistyped id.
func (s *Service) GetByID(id string) (models.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	if !ok {
		return models.CatalogEntry{}, fmt.Errorf("%w: %s %q", ErrNotFound, s.opts.Entity, id)
	}
	return *e, nil
}

// Categories returns the fixed category set, "All" first.
func (s *Service) Categories() []string {
	out := make([]string, len(s.opts.Categories))
	copy(out, s.opts.Categories)
	return out
}

func (s *Service) snapshot() []models.CatalogEntry {
	out := make([]models.CatalogEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = *e
	}
	return out
}

func (s *Service) kind() models.EntryKind {
	if s.opts.Entity == "game" {
		return models.EntryKindGame
	}
	return models.EntryKindTool
}
