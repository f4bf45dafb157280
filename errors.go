package settingsexpr

import "errors"

// ErrInvalidConfig is returned when environment configuration is unusable.
var ErrInvalidConfig = errors.New("invalid serializer configuration")
