package emitter

import (
	"errors"
	"fmt"
)

// ErrUnrepresentable is returned for calls the key/value format has no
// spelling for.
var ErrUnrepresentable = errors.New("call cannot be represented as key/value pairs")

// ArgumentError reports a bound argument that failed to render.
type ArgumentError struct {
	Method    string
	Parameter string
	Key       string
	Err       error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument %q for key %q: %v", e.Method, e.Parameter, e.Key, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// IsArgumentError reports whether err is or wraps an *ArgumentError.
func IsArgumentError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}
