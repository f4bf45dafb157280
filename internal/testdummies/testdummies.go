// Package testdummies provides extension sinks, enrichers, filters and named
// values used to exercise the serializer. It plays the part of third-party
// extension modules.
package testdummies

import (
	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
	"github.com/dmitrymomot/settingsexpr/pkg/level"
)

const (
	// Module declares the dummy sinks, enrichers, themes and formatters.
	Module = "TestDummies"
	// FiltersModule declares the expression based filters.
	FiltersModule = "Serilog.Filters.Expressions"

	themesType     = "TestDummies.Console.Themes.ConsoleThemes"
	formattersType = "TestDummies.Formatting.CustomFormatters"
)

// ConsoleTheme is the abstract theme accepted by DummyConsole.
type ConsoleTheme interface {
	Apply(text string) string
}

// TextFormatter is the abstract formatter accepted by formatter aware sinks.
type TextFormatter interface {
	Format(message string) string
}

// FormatProvider supplies culture-specific formatting.
type FormatProvider interface {
	Culture() string
}

type namedTheme struct {
	name string
}

func (t *namedTheme) Apply(text string) string { return t.name + ":" + text }

type namedFormatter struct {
	name string
}

func (f *namedFormatter) Format(message string) string { return f.name + ":" + message }

// Named themes and formatters. Each variable is its own instance.
var (
	Theme1      ConsoleTheme  = &namedTheme{name: "theme1"}
	Theme1Field ConsoleTheme  = &namedTheme{name: "theme1"}
	Formatter   TextFormatter = &namedFormatter{name: "formatter"}
	// FormatterField mirrors Formatter under a second accessor name.
	FormatterField TextFormatter = &namedFormatter{name: "formatter"}
)

// MyCustomConsoleTheme is a concrete theme with a usable default value.
type MyCustomConsoleTheme struct {
	Prefix string
}

func (t *MyCustomConsoleTheme) Apply(text string) string { return t.Prefix + text }

// MyCustomTextFormatter is a concrete formatter with a usable default value.
type MyCustomTextFormatter struct {
	Suffix string
}

func (f *MyCustomTextFormatter) Format(message string) string { return message + f.Suffix }

// Methods.
var (
	DummyThreadIDEnricher = catalog.MustDefine(catalog.SurfaceEnrich, Module, "WithDummyThreadId")

	DummyRollingFileSink = catalog.MustDefine(catalog.SurfaceSink, Module, "DummyRollingFile",
		catalog.Param[string]("pathFormat"),
		catalog.Optional("restrictedToMinimumLevel", level.Verbose),
		catalog.Optional[*string]("outputTemplate", nil),
		catalog.Optional[FormatProvider]("formatProvider", nil),
	)

	DummyRollingFileFormatterSink = catalog.MustDefine(catalog.SurfaceSink, Module, "DummyRollingFile",
		catalog.Param[TextFormatter]("formatter"),
		catalog.Param[string]("pathFormat"),
		catalog.Optional("restrictedToMinimumLevel", level.Verbose),
	)

	DummyConsoleSink = catalog.MustDefine(catalog.SurfaceSink, Module, "DummyConsole",
		catalog.Optional("restrictedToMinimumLevel", level.Verbose),
		catalog.Optional[ConsoleTheme]("theme", nil),
	)

	DummyWithFormatterSink = catalog.MustDefine(catalog.SurfaceSink, Module, "DummyWithFormatter",
		catalog.Optional("restrictedToMinimumLevel", level.Verbose),
		catalog.Optional[TextFormatter]("formatter", nil),
	)

	ByExcludingFilter = catalog.MustDefine(catalog.SurfaceFilter, FiltersModule, "ByExcluding",
		catalog.Param[string]("expression"),
	)
)

// WithDummyThreadID enriches events with a dummy thread id.
func WithDummyThreadID() catalog.Invocation {
	return DummyThreadIDEnricher.Invoke()
}

// DummyRollingFile writes to a rolling file.
func DummyRollingFile(pathFormat string, restrictedToMinimumLevel level.Level, outputTemplate *string, formatProvider FormatProvider) catalog.Invocation {
	return DummyRollingFileSink.Invoke(pathFormat, restrictedToMinimumLevel, outputTemplate, formatProvider)
}

// DummyRollingFileWithFormatter writes to a rolling file through formatter.
func DummyRollingFileWithFormatter(formatter TextFormatter, pathFormat string, restrictedToMinimumLevel level.Level) catalog.Invocation {
	return DummyRollingFileFormatterSink.Invoke(formatter, pathFormat, restrictedToMinimumLevel)
}

// DummyConsole writes to the console with theme.
func DummyConsole(restrictedToMinimumLevel level.Level, theme ConsoleTheme) catalog.Invocation {
	return DummyConsoleSink.Invoke(restrictedToMinimumLevel, theme)
}

// DummyWithFormatter writes through formatter.
func DummyWithFormatter(restrictedToMinimumLevel level.Level, formatter TextFormatter) catalog.Invocation {
	return DummyWithFormatterSink.Invoke(restrictedToMinimumLevel, formatter)
}

// ByExcluding drops events matching expression.
func ByExcluding(expression string) catalog.Invocation {
	return ByExcludingFilter.Invoke(expression)
}

// Register adds every dummy method, named value and constructible type to reg.
func Register(reg *catalog.Registry) {
	reg.MustRegister(
		DummyThreadIDEnricher,
		DummyRollingFileSink,
		DummyRollingFileFormatterSink,
		DummyConsoleSink,
		DummyWithFormatterSink,
		ByExcludingFilter,
	)

	reg.MustRegisterAccessor(Theme1, themesType, "Theme1", Module)
	reg.MustRegisterAccessor(Theme1Field, themesType, "Theme1Field", Module)
	reg.MustRegisterAccessor(Formatter, formattersType, "Formatter", Module)
	reg.MustRegisterAccessor(FormatterField, formattersType, "FormatterField", Module)

	reg.MustRegisterType("TestDummies.Console.Themes.MyCustomConsoleTheme", Module, func() any {
		return &MyCustomConsoleTheme{}
	})
	reg.MustRegisterType("TestDummies.Formatting.MyCustomTextFormatter", Module, func() any {
		return &MyCustomTextFormatter{}
	})
}

// NewRegistry returns a registry holding the core vocabulary and every dummy.
func NewRegistry() *catalog.Registry {
	reg := catalog.NewRegistry()
	Register(reg)
	return reg
}
