// internal/models/entry.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// CatalogEntry is one catalog item: an AI tool or a game. Entries are
// constructed once at startup by merging the static seed record with any
// overlay values persisted for the same ID, live for the process lifetime,
// and are mutated in place behind the catalog service's ownership boundary.
type CatalogEntry struct {
	ID          string    `json:"id"`
	Kind        EntryKind `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	ExternalURL string    `json:"external_url"`

	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"total_ratings"`

	// UsageCount is the visit count for tools and the play count for games.
	UsageCount int64 `json:"usage_count"`

	// Comments is kept newest-first and updated synchronously on every
	// comment write-through.
	Comments []Comment `json:"comments,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	Features  pq.StringArray `json:"features,omitempty"`

	// Tool-only fields
	IsFree    bool   `json:"is_free,omitempty"`
	Pricing   string `json:"pricing,omitempty"`
	Country   string `json:"country,omitempty"`
	UsageTime string `json:"usage_time,omitempty"`
	HowToUse  string `json:"how_to_use,omitempty"`

	// Game-only fields
	PlayTime  string `json:"play_time,omitempty"`
	HowToPlay string `json:"how_to_play,omitempty"`
}

// Comment is one user-submitted feedback item. Comments are append-only:
// they are never edited or deleted, only superseded when the persisted list
// for an entry is cleared externally.
type Comment struct {
	ID      string `json:"id"`
	EntryID string `json:"entry_id"`
	Author  string `json:"author"`
	Content string `json:"content"`

	// Rating is 1-5 on review-style comments and 0 on plain thread comments.
	Rating int `json:"rating,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
