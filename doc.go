// Package settingsexpr serializes fluent logging configuration expressions
// into the ordered key/value pairs read by key/value settings loaders.
//
// A configuration expression is a function over the builder surface of
// package builder. The serializer evaluates it against a recording stand-in,
// then turns every recorded call into pairs:
//
//	s := settingsexpr.New(settingsexpr.WithRegistry(reg))
//	pairs, err := s.SerializeToKeyValuePairs(func(lc builder.LoggerConfiguration) builder.LoggerConfiguration {
//		return lc.
//			MinimumLevel().Debug().
//			MinimumLevel().Override("Microsoft", level.Warning).
//			Enrich().WithProperty("Application", "billing", false).
//			WriteTo().Sink(sinks.RollingFile("logs/app.log"))
//	})
//
// yields, in order:
//
//	minimum-level                          = Debug
//	minimum-level:override:Microsoft       = Warning
//	enrich:with-property:Application       = billing
//	using:Sinks                            = Sinks
//	write-to:RollingFile.pathFormat        = logs/app.log
//
// Extension methods, named values and constructible types are declared in a
// catalog.Registry owned by the caller. Methods outside the core module are
// preceded by one "using:<module>" pair per run. Arguments equal to their
// declared default produce no pair.
//
// Serialization is all or nothing: unsupported calls and values that cannot
// be rendered fail the whole run. Independent runs share no mutable state, so
// a Serializer may be used from multiple goroutines.
//
// # Configuration
//
// NewFromEnv reads SETTINGSEXPR_CORE_MODULE, SETTINGSEXPR_LOG_LEVEL and
// SETTINGSEXPR_LOG_FORMAT through package config.
//
// Pairs can be written out with package export or published to Redis with
// package redis.
package settingsexpr
