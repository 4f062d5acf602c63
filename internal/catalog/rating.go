// internal/catalog/rating.go
package catalog

import (
	"fmt"

	"github.com/aigrocery/catalog-backend/internal/models"
	"github.com/aigrocery/catalog-backend/internal/overlay"
)

type RatingResult struct {
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"total_ratings"`
}

// SubmitRating records a new 1-5 star rating and updates the running mean.
// Each call is an independent vote: there is no per-user deduplication, so
// calling twice submits two ratings.
func (s *Service) SubmitRating(id string, stars int) (RatingResult, error) {
	if stars < 1 || stars > 5 {
		return RatingResult{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return RatingResult{}, fmt.Errorf("%w: %s %q", ErrNotFound, s.opts.Entity, id)
	}
	return s.applyRating(e, stars)
}

// applyRating assumes s.mu is held. The mean is maintained incrementally;
// no rating history is retained, so it is never recomputed by replay.
func (s *Service) applyRating(e *models.CatalogEntry, stars int) (RatingResult, error) {
	newTotal := e.TotalRatings + 1
	newMean := (e.Rating*float64(e.TotalRatings) + float64(stars)) / float64(newTotal)

	// Write-through before touching the in-memory record.
	if err := overlay.SetFloat(s.store, s.keys.Rating(e.ID), newMean); err != nil {
		return RatingResult{}, err
	}
	if err := overlay.SetInt(s.store, s.keys.TotalRatings(e.ID), int64(newTotal)); err != nil {
		return RatingResult{}, err
	}

	e.Rating = newMean
	e.TotalRatings = newTotal
	return RatingResult{Rating: newMean, TotalRatings: newTotal}, nil
}
