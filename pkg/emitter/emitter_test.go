package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/settingsexpr/internal/testdummies"
	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
	"github.com/dmitrymomot/settingsexpr/pkg/emitter"
	"github.com/dmitrymomot/settingsexpr/pkg/inspect"
	"github.com/dmitrymomot/settingsexpr/pkg/level"
	"github.com/dmitrymomot/settingsexpr/pkg/render"
)

func newEmitter() *emitter.Emitter {
	return emitter.New(inspect.New(catalog.CoreModule), render.New(testdummies.NewRegistry()))
}

func call(t *testing.T, category catalog.Category, m *catalog.Method, args ...any) catalog.ConfigurationCall {
	t.Helper()
	bindings, err := m.Bind(args)
	require.NoError(t, err)
	return catalog.ConfigurationCall{Category: category, Method: m, Bindings: bindings}
}

func TestEmit(t *testing.T) {
	t.Parallel()

	t.Run("bare levels use the method name", func(t *testing.T) {
		t.Parallel()
		pairs, err := newEmitter().Emit([]catalog.ConfigurationCall{
			call(t, catalog.CategoryMinimumLevel, catalog.MinimumLevelDebug),
			call(t, catalog.CategoryMinimumLevel, catalog.MinimumLevelFatal),
		})
		require.NoError(t, err)
		assert.Equal(t, []emitter.KeyValuePair{
			{Key: "minimum-level", Value: "Debug"},
			{Key: "minimum-level", Value: "Fatal"},
		}, pairs)
	})

	t.Run("fixed keys hold the sole value", func(t *testing.T) {
		t.Parallel()
		override := call(t, catalog.CategoryMinimumLevelOverride, catalog.MinimumLevelOverride, "Foo", level.Error)
		override.Target = "Foo"
		override.Bindings = override.Bindings[1:]

		property := call(t, catalog.CategoryEnrich, catalog.WithProperty, "Prop2", 42)
		property.Target = "Prop2"
		property.Bindings = property.Bindings[1:]

		pairs, err := newEmitter().Emit([]catalog.ConfigurationCall{
			call(t, catalog.CategoryMinimumLevelIs, catalog.MinimumLevelIs, level.Warning),
			override,
			property,
		})
		require.NoError(t, err)
		assert.Equal(t, []emitter.KeyValuePair{
			{Key: "minimum-level", Value: "Warning"},
			{Key: "minimum-level:override:Foo", Value: "Error"},
			{Key: "enrich:with-property:Prop2", Value: "42"},
		}, pairs)
	})

	t.Run("module reference once before first use", func(t *testing.T) {
		t.Parallel()
		pairs, err := newEmitter().Emit([]catalog.ConfigurationCall{
			call(t, catalog.CategoryEnrich, catalog.FromLogContext),
			call(t, catalog.CategoryEnrich, testdummies.DummyThreadIDEnricher),
			call(t, catalog.CategoryWriteTo, testdummies.DummyRollingFileSink, "logs/app.log", level.Warning),
			call(t, catalog.CategoryFilter, testdummies.ByExcludingFilter, "filter = 'exclude'"),
			call(t, catalog.CategoryAuditTo, testdummies.DummyRollingFileSink, "logs/audit.log"),
		})
		require.NoError(t, err)
		assert.Equal(t, []emitter.KeyValuePair{
			{Key: "enrich:FromLogContext", Value: ""},
			{Key: "using:TestDummies", Value: "TestDummies"},
			{Key: "enrich:WithDummyThreadId", Value: ""},
			{Key: "write-to:DummyRollingFile.pathFormat", Value: "logs/app.log"},
			{Key: "write-to:DummyRollingFile.restrictedToMinimumLevel", Value: "Warning"},
			{Key: "using:Serilog.Filters.Expressions", Value: "Serilog.Filters.Expressions"},
			{Key: "filter:ByExcluding.expression", Value: "filter = 'exclude'"},
			{Key: "audit-to:DummyRollingFile.pathFormat", Value: "logs/audit.log"},
		}, pairs)
	})

	t.Run("interface parameters render as references", func(t *testing.T) {
		t.Parallel()
		pairs, err := newEmitter().Emit([]catalog.ConfigurationCall{
			call(t, catalog.CategoryWriteTo, testdummies.DummyConsoleSink, level.Verbose, testdummies.Theme1),
			call(t, catalog.CategoryWriteTo, testdummies.DummyWithFormatterSink, level.Verbose, &testdummies.MyCustomTextFormatter{}),
		})
		require.NoError(t, err)
		assert.Equal(t, []emitter.KeyValuePair{
			{Key: "using:TestDummies", Value: "TestDummies"},
			{Key: "write-to:DummyConsole.theme", Value: "TestDummies.Console.Themes.ConsoleThemes::Theme1, TestDummies"},
			{Key: "write-to:DummyWithFormatter.formatter", Value: "TestDummies.Formatting.MyCustomTextFormatter, TestDummies"},
		}, pairs)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		pairs, err := newEmitter().Emit(nil)
		require.NoError(t, err)
		assert.Empty(t, pairs)
	})
}

func TestEmitFailures(t *testing.T) {
	t.Parallel()

	t.Run("unrenderable argument", func(t *testing.T) {
		t.Parallel()
		pairs, err := newEmitter().Emit([]catalog.ConfigurationCall{
			call(t, catalog.CategoryEnrich, testdummies.DummyThreadIDEnricher),
			call(t, catalog.CategoryWriteTo, testdummies.DummyConsoleSink, level.Verbose, &testdummies.MyCustomConsoleTheme{Prefix: "> "}),
		})
		require.Error(t, err)
		assert.Nil(t, pairs)
		assert.ErrorIs(t, err, render.ErrCannotRender)
		assert.True(t, emitter.IsArgumentError(err))

		var ae *emitter.ArgumentError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "TestDummies::DummyConsole", ae.Method)
		assert.Equal(t, "theme", ae.Parameter)
		assert.Equal(t, "write-to:DummyConsole.theme", ae.Key)
	})

	t.Run("destructured property", func(t *testing.T) {
		t.Parallel()
		property := call(t, catalog.CategoryEnrich, catalog.WithProperty, "Prop", "value", true)
		property.Target = "Prop"
		property.Bindings = property.Bindings[1:]

		_, err := newEmitter().Emit([]catalog.ConfigurationCall{property})
		assert.ErrorIs(t, err, emitter.ErrUnrepresentable)
	})

	t.Run("nil property value", func(t *testing.T) {
		t.Parallel()
		property := call(t, catalog.CategoryEnrich, catalog.WithProperty, "Prop", nil)
		property.Target = "Prop"
		property.Bindings = property.Bindings[1:]

		_, err := newEmitter().Emit([]catalog.ConfigurationCall{property})
		assert.ErrorIs(t, err, render.ErrNilValue)
		assert.True(t, emitter.IsArgumentError(err))
	})

	t.Run("fixed key without argument", func(t *testing.T) {
		t.Parallel()
		_, err := newEmitter().Emit([]catalog.ConfigurationCall{
			{Category: catalog.CategoryMinimumLevelIs, Method: catalog.MinimumLevelIs},
		})
		assert.ErrorIs(t, err, emitter.ErrUnrepresentable)
	})
}
