package walker

import "errors"

var (
	// ErrNilExpression is returned when Walk receives a nil expression.
	ErrNilExpression = errors.New("nil configuration expression")

	// ErrUnsupportedMethod is returned for invocations of methods absent from the registry.
	ErrUnsupportedMethod = errors.New("unsupported configuration method")

	// ErrSurfaceMismatch is returned when a method is applied to a sub-builder it does not belong to.
	ErrSurfaceMismatch = errors.New("method invoked on the wrong configuration surface")

	// ErrEmptyTarget is returned when an override source or property name is empty.
	ErrEmptyTarget = errors.New("empty override source or property name")
)
