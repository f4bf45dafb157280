// Package level defines the event levels understood by the logging pipeline
// vocabulary: Verbose, Debug, Information, Warning, Error and Fatal.
//
// Levels render by their symbolic name, never by their numeric value, which is
// what key/value settings loaders expect:
//
//	level.Warning.String() // "Warning"
//
// Parse accepts the symbolic names case-insensitively, and Level implements
// encoding.TextMarshaler and encoding.TextUnmarshaler so it can be used
// directly in env-tagged configuration structs.
package level
