// Package builder defines the fluent configuration surface a configuration
// expression is written against.
//
// The surface mirrors a logging pipeline builder: a root LoggerConfiguration
// with minimum-level, enrichment, sink, audit sink and filter sub-builders.
// Every sub-builder call returns the root so calls compose into a single
// chain:
//
//	func(lc builder.LoggerConfiguration) builder.LoggerConfiguration {
//	    return lc.
//	        MinimumLevel().Debug().
//	        MinimumLevel().Override("Microsoft", level.Warning).
//	        Enrich().FromLogContext().
//	        WriteTo().Sink(sinks.RollingFile("app.log"))
//	}
//
// Extension sinks, enrichers and filters are catalog.Invocation values built
// by the package that defines them and applied with Sink or With.
package builder

import (
	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
	"github.com/dmitrymomot/settingsexpr/pkg/level"
)

// Expression is a configuration expression: a function of the builder to the
// configured builder.
type Expression func(LoggerConfiguration) LoggerConfiguration

// LoggerConfiguration is the root of the fluent surface.
type LoggerConfiguration interface {
	MinimumLevel() MinimumLevelConfiguration
	Enrich() EnrichmentConfiguration
	WriteTo() SinkConfiguration
	AuditTo() SinkConfiguration
	Filter() FilterConfiguration
}

// MinimumLevelConfiguration sets the minimum level and per-source overrides.
type MinimumLevelConfiguration interface {
	Verbose() LoggerConfiguration
	Debug() LoggerConfiguration
	Information() LoggerConfiguration
	Warning() LoggerConfiguration
	Error() LoggerConfiguration
	Fatal() LoggerConfiguration
	Is(minimumLevel level.Level) LoggerConfiguration
	Override(source string, minimumLevel level.Level) LoggerConfiguration
}

// EnrichmentConfiguration attaches enrichers.
type EnrichmentConfiguration interface {
	FromLogContext() LoggerConfiguration
	WithProperty(name string, value any, destructureObjects bool) LoggerConfiguration
	// With applies an extension enricher.
	With(inv catalog.Invocation) LoggerConfiguration
}

// SinkConfiguration attaches sinks, for both WriteTo and AuditTo.
type SinkConfiguration interface {
	Sink(inv catalog.Invocation) LoggerConfiguration
}

// FilterConfiguration attaches filters.
type FilterConfiguration interface {
	With(inv catalog.Invocation) LoggerConfiguration
}
