// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Entries
	KeyEntryNotFound = "entry.not_found"
	KeyToolNotFound  = "tool.not_found"
	KeyGameNotFound  = "game.not_found"

	// Ratings
	KeyRatingSubmitted = "rating.submitted"
	KeyRatingInvalid   = "rating.invalid"

	// Comments
	KeyCommentCreated = "comment.created"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationTooLong  = "validation.too_long"

	// Search
	KeySearchNoResults    = "search.no_results"
	KeySearchResultsFound = "search.results_found"
)
