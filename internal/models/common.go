// internal/models/common.go
package models

// Enums
type EntryKind string

const (
	EntryKindTool EntryKind = "tool"
	EntryKindGame EntryKind = "game"
)

// FeedbackStyle selects which of the two comment surfaces an entity carries:
// games use a plain nickname+text thread, tools use star-rated reviews.
type FeedbackStyle string

const (
	FeedbackStyleReview FeedbackStyle = "review"
	FeedbackStyleThread FeedbackStyle = "thread"
)

type SortMethod string

const (
	SortAlphabetical  SortMethod = "alphabetical"
	SortMostVisited   SortMethod = "mostVisited"
	SortMostPlayed    SortMethod = "mostPlayed"
	SortByDate        SortMethod = "date"
	SortHighestRated  SortMethod = "highestRated"
	SortMostCommented SortMethod = "mostCommented"
)

// CategoryAll is the identity value for category filtering.
const CategoryAll = "All"
