package document

import "errors"

var (
	// ErrNotFound indicates the store has no document under the requested name.
	ErrNotFound = errors.New("document not found")

	// ErrStoreWrite indicates the store rejected a write. The session stays
	// dirty when this happens.
	ErrStoreWrite = errors.New("store write failed")

	// ErrInvalidName indicates a name a store adapter cannot use as a key.
	ErrInvalidName = errors.New("invalid document name")
)
