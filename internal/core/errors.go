package core

import "errors"

var (
	// ErrNotADirectory is returned when a root exists but is not a directory
	ErrNotADirectory = errors.New("not a directory")

	// ErrInvalidPattern is returned for a malformed glob pattern
	ErrInvalidPattern = errors.New("invalid pattern")
)
