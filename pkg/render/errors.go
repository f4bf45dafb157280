package render

import "errors"

var (
	// ErrCannotRender is returned when a value has no canonical textual form.
	ErrCannotRender = errors.New("cannot render parameter value")

	// ErrNilValue is returned when a nil value has to be rendered.
	ErrNilValue = errors.New("cannot render nil parameter value")
)
