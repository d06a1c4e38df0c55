package repositories

import "errors"

var (
	// ErrNotFound is returned by single-document lookups that matched nothing.
	ErrNotFound = errors.New("document not found")

	// ErrStoreUnavailable is returned by every operation when the process is
	// running without a document store. Callers degrade rather than fail.
	ErrStoreUnavailable = errors.New("document store unavailable")
)
