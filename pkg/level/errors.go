package level

import "errors"

// ErrUnknownLevel is returned when a name or number does not map to a Level.
var ErrUnknownLevel = errors.New("unknown log event level")
