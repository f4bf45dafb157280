// Package catalog holds the static schema of the configuration vocabulary and
// the plugin-registration table the serializer consults.
//
// A Method describes one fluent call that can appear in a configuration
// expression: the sub-builder it hangs off (Surface), the module that defines
// it, its name and its ordered parameters, each with an optional declared
// default. Extension packages describe their sinks, enrichers and filters as
// Methods and register them, together with any named values (themes,
// formatters, ...) that should be rendered as accessor references:
//
//	var DummyRollingFile = catalog.MustDefine(catalog.SurfaceSink, "TestDummies", "DummyRollingFile",
//	    catalog.Param[string]("pathFormat"),
//	    catalog.Optional("restrictedToMinimumLevel", level.Verbose),
//	)
//
//	reg := catalog.NewRegistry()
//	reg.MustRegister(DummyRollingFile)
//	reg.MustRegisterAccessor(Theme1, "TestDummies.Console.Themes.ConsoleThemes", "Theme1", "TestDummies")
//
// # Architecture
//
// NewRegistry returns a table that already knows the core vocabulary
// (minimum levels, FromLogContext, WithProperty). Registration order is
// significant for named accessors: when two accessors hold the same instance,
// the first registered one wins. Registration is guarded by a sync.RWMutex;
// lookups performed during serialization only take the read lock.
//
// Method.Bind performs the host-side argument binding: trailing omitted
// parameters take their declared defaults, every argument is type-checked
// against the parameter, and arguments equal to the declared default are
// dropped from the resulting bindings.
//
// # Error Handling
//
// Registration and binding failures are reported with the sentinel errors in
// errors.go, wrapped with call-specific detail via fmt.Errorf("%w").
package catalog
