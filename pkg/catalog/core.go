package catalog

import "github.com/dmitrymomot/settingsexpr/pkg/level"

// CoreModule is the module shipping the base vocabulary. Calls to its methods
// never need a module reference.
const CoreModule = "Serilog"

// Core vocabulary.
var (
	MinimumLevelVerbose     = MustDefine(SurfaceMinimumLevel, CoreModule, level.Verbose.String())
	MinimumLevelDebug       = MustDefine(SurfaceMinimumLevel, CoreModule, level.Debug.String())
	MinimumLevelInformation = MustDefine(SurfaceMinimumLevel, CoreModule, level.Information.String())
	MinimumLevelWarning     = MustDefine(SurfaceMinimumLevel, CoreModule, level.Warning.String())
	MinimumLevelError       = MustDefine(SurfaceMinimumLevel, CoreModule, level.Error.String())
	MinimumLevelFatal       = MustDefine(SurfaceMinimumLevel, CoreModule, level.Fatal.String())

	MinimumLevelIs = MustDefine(SurfaceMinimumLevel, CoreModule, "Is",
		Param[level.Level]("minimumLevel"),
	)
	MinimumLevelOverride = MustDefine(SurfaceMinimumLevel, CoreModule, "Override",
		Param[string]("source"),
		Param[level.Level]("minimumLevel"),
	)

	FromLogContext = MustDefine(SurfaceEnrich, CoreModule, "FromLogContext")
	WithProperty   = MustDefine(SurfaceEnrich, CoreModule, "WithProperty",
		Param[string]("name"),
		Param[any]("value"),
		Optional("destructureObjects", false),
	)
)

// LevelMethod returns the bare minimum-level method for l.
func LevelMethod(l level.Level) *Method {
	switch l {
	case level.Verbose:
		return MinimumLevelVerbose
	case level.Debug:
		return MinimumLevelDebug
	case level.Information:
		return MinimumLevelInformation
	case level.Warning:
		return MinimumLevelWarning
	case level.Error:
		return MinimumLevelError
	case level.Fatal:
		return MinimumLevelFatal
	default:
		return nil
	}
}

// CoreMethods returns the core vocabulary in declaration order.
func CoreMethods() []*Method {
	return []*Method{
		MinimumLevelVerbose,
		MinimumLevelDebug,
		MinimumLevelInformation,
		MinimumLevelWarning,
		MinimumLevelError,
		MinimumLevelFatal,
		MinimumLevelIs,
		MinimumLevelOverride,
		FromLogContext,
		WithProperty,
	}
}
