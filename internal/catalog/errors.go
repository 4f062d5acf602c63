// internal/catalog/errors.go
package catalog

import "errors"

var (
	// ErrNotFound means an entry id did not resolve. A stale or mistyped id
	// is a normal outcome; callers decide how to react.
	ErrNotFound = errors.New("entry not found")

	// ErrValidation covers rejected user input on feedback submission.
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyInitialized guards against a second Initialize call, which
	// would silently drop in-memory mutations accumulated since the last
	// write-through.
	ErrAlreadyInitialized = errors.New("catalog already initialized")
)
