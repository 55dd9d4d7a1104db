package resolution

import "errors"

var (
	// ErrInvalidInput is returned when a required parameter is missing
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFormat is returned when a filename cannot be split into
	// at least two tokens
	ErrInvalidFormat = errors.New("invalid format")

	// ErrSongNotFound is returned when no token ordering or search hit
	// produced a match
	ErrSongNotFound = errors.New("song not found")
)
