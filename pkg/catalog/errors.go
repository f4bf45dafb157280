package catalog

import "errors"

var (
	// ErrInvalidMethod is returned when a method definition is incomplete or malformed.
	ErrInvalidMethod = errors.New("invalid method definition")

	// ErrDuplicateMethod is returned when two different methods share a surface, module, name and parameter list.
	ErrDuplicateMethod = errors.New("method already registered")

	// ErrInvalidAccessor is returned when a named accessor cannot be registered.
	ErrInvalidAccessor = errors.New("invalid named accessor")

	// ErrInvalidType is returned when a default-constructible type cannot be registered.
	ErrInvalidType = errors.New("invalid constructible type")

	// ErrArgumentCount is returned when an invocation binds too many arguments or omits a required one.
	ErrArgumentCount = errors.New("wrong number of arguments")

	// ErrArgumentType is returned when an argument is not assignable to its parameter type.
	ErrArgumentType = errors.New("argument type mismatch")
)
