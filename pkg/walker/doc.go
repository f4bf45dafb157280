// Package walker evaluates a configuration expression against a recording
// stand-in of the builder surface and returns every call it made, in order.
//
// The recorder implements each builder interface; sub-builders chain back to
// the recording root, so any fluent chain the real builder accepts can be
// recorded. Each call is validated against the catalog.Registry: the method
// must be registered, belong to the sub-builder it was invoked on, and its
// arguments must bind to the declared parameters. Arguments equal to their
// declared default are dropped during binding.
//
// The first failure stops recording; Walk reports it and returns no calls.
//
//	calls, err := walker.Walk(reg, func(lc builder.LoggerConfiguration) builder.LoggerConfiguration {
//	    return lc.MinimumLevel().Override("Microsoft", level.Warning)
//	})
package walker
