package pairmap

import "errors"

var (
	// ErrAllocationFailure is returned by Insert when storage for the entry can not be obtained.
	ErrAllocationFailure = errors.New("allocation failure")
	ErrDestroyed         = errors.New("map already destroyed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidUTF8       = errors.New("data files hold UTF-8 text only")
)
