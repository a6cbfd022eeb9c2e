package store

import "errors"

var (
	// ErrStoreDisabled indicates that no store path is configured.
	ErrStoreDisabled = errors.New("run store is not configured")
	// ErrRunNotFound indicates that the requested run does not exist.
	ErrRunNotFound = errors.New("run not found")
	// ErrSnapshotNotFound indicates that the requested snapshot does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
