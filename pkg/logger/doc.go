// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors that keep key names consistent.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler by Format and wraps it
// in LogHandlerDecorator, which runs registered ContextExtractor callbacks on
// every record:
//
//	log := logger.New(
//	    logger.WithDevelopment("settingsexpr"),
//	    logger.WithContextValue("run_id", runIDKey),
//	)
//	log.Debug("recorded call", logger.Method("TestDummies::DummyConsole"))
//
// ParseLevel and ParseFormat turn configuration strings into options values.
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
