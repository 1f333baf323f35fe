package store

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no store connection is configured or the
	// connection is unusable.
	ErrUnavailable = errors.New("document store unavailable")

	// ErrNotFound means the requested document does not exist. A
	// malformed identifier is reported the same way.
	ErrNotFound = errors.New("document not found")
)

// WriteError wraps a store-internal failure while persisting a document.
type WriteError struct {
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write to %s failed: %v", e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
