// internal/catalog/comments.go
package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aigrocery/catalog-backend/internal/models"
	"github.com/aigrocery/catalog-backend/internal/overlay"
)

const maxCommentLength = 500

// maxThreadAuthorLength bounds nicknames on the plain comment thread. The
// review surface deliberately leaves author names unbounded; the two product
// surfaces differ here on purpose.
const maxThreadAuthorLength = 20

// ListComments returns the persisted comments for an entry in display order
// (newest first). An id with no prior comments yields an empty list, never
// an error.
func (s *Service) ListComments(id string) []models.Comment {
	return s.displayOrder(s.storedComments(id))
}

// AddComment appends a comment to the entry's ledger and writes the full
// updated list through before the in-memory entry is touched. On the review
// surface stars > 0 attaches a rating, which also feeds the rating
// aggregator in the same call; the plain thread rejects stars entirely.
// Comments are never edited or deleted afterwards.
func (s *Service) AddComment(id, author, content string, stars int) (models.Comment, error) {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)

	if author == "" {
		return models.Comment{}, fmt.Errorf("%w: author is required", ErrValidation)
	}
	if content == "" {
		return models.Comment{}, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return models.Comment{}, fmt.Errorf("%w: content must be at most %d characters", ErrValidation, maxCommentLength)
	}
	if s.opts.FeedbackStyle == models.FeedbackStyleThread {
		if utf8.RuneCountInString(author) > maxThreadAuthorLength {
			return models.Comment{}, fmt.Errorf("%w: nickname must be at most %d characters", ErrValidation, maxThreadAuthorLength)
		}
		// The plain thread carries no per-comment rating; stars go through
		// the ratings endpoint instead.
		if stars != 0 {
			return models.Comment{}, fmt.Errorf("%w: comments do not accept a rating", ErrValidation)
		}
	}
	if stars != 0 && (stars < 1 || stars > 5) {
		return models.Comment{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return models.Comment{}, fmt.Errorf("%w: %s %q", ErrNotFound, s.opts.Entity, id)
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		EntryID:   id,
		Author:    author,
		Content:   content,
		Rating:    stars,
		CreatedAt: s.now(),
	}

	stored := s.storedComments(id)
	if s.opts.FeedbackStyle == models.FeedbackStyleThread {
		stored = append([]models.Comment{comment}, stored...)
	} else {
		stored = append(stored, comment)
	}

	if err := overlay.SetJSON(s.store, s.keys.Comments(id), stored); err != nil {
		return models.Comment{}, err
	}
	e.Comments = s.displayOrder(stored)

	if stars > 0 {
		if _, err := s.applyRating(e, stars); err != nil {
			return models.Comment{}, err
		}
	}
	return comment, nil
}

// displayOrder converts a stored list into newest-first display order. The
// thread surface prepends on write so it is stored newest-first already; the
// review surface appends, so its stored order is reversed here. Each surface
// stays internally consistent.
func (s *Service) displayOrder(stored []models.Comment) []models.Comment {
	if s.opts.FeedbackStyle == models.FeedbackStyleThread {
		return stored
	}
	out := make([]models.Comment, len(stored))
	for i, c := range stored {
		out[len(stored)-1-i] = c
	}
	return out
}
