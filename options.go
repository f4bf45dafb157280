package settingsexpr

import (
	"log/slog"

	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
)

// Option configures a Serializer.
type Option func(*Serializer)

// WithRegistry sets the registry holding extension methods, named values and
// constructible types. Nil is ignored.
func WithRegistry(reg *catalog.Registry) Option {
	return func(s *Serializer) {
		if reg != nil {
			s.reg = reg
		}
	}
}

// WithCoreModule sets an additional module whose methods need no module
// reference. The built-in vocabulary never needs one.
// Empty names are ignored.
func WithCoreModule(module string) Option {
	return func(s *Serializer) {
		if module != "" {
			s.coreModule = module
		}
	}
}

// WithLogger sets the logger used for diagnostics. Nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(s *Serializer) {
		if log != nil {
			s.log = log
		}
	}
}
