// internal/catalog/session.go
package catalog

import (
	"fmt"

	"github.com/aigrocery/catalog-backend/internal/overlay"
)

// The star-selection cache holds a visitor's not-yet-submitted star pick for
// an entry. It is written through to the overlay store under the session's
// scope, so a pick survives a restart like every other piece of user state,
// and is deleted on submit or reset.

func (s *Service) selectionKey(sessionID, id string) string {
	return sessionID + ":" + s.keys.StarSelection(id)
}

// StarSelection returns the cached selection for a session, if any.
func (s *Service) StarSelection(sessionID, id string) (int, bool) {
	stars, ok := overlay.GetInt(s.store, s.selectionKey(sessionID, id))
	return int(stars), ok
}

func (s *Service) SetStarSelection(sessionID, id string, stars int) error {
	if stars < 1 || stars > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return overlay.SetInt(s.store, s.selectionKey(sessionID, id), int64(stars))
}

func (s *Service) ClearStarSelection(sessionID, id string) error {
	return s.store.Delete(s.selectionKey(sessionID, id))
}
