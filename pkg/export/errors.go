package export

import "errors"

var (
	// ErrKeyCollision is returned when two distinct settings keys map to the
	// same environment variable name.
	ErrKeyCollision = errors.New("settings keys collide")
	ErrEmptySection = errors.New("empty yaml section")
	ErrWriteFailed  = errors.New("failed to write settings")
)
