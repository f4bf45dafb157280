package render_test

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/settingsexpr/internal/testdummies"
	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
	"github.com/dmitrymomot/settingsexpr/pkg/level"
	"github.com/dmitrymomot/settingsexpr/pkg/render"
)

type port uint16

type mode int

// stringTheme satisfies testdummies.ConsoleTheme without being registered.
type stringTheme string

func (t stringTheme) Apply(text string) string { return string(t) + text }

func (t stringTheme) MarshalText() ([]byte, error) { return []byte(t), nil }

func (m mode) MarshalText() ([]byte, error) {
	if m == 0 {
		return nil, errors.New("unset mode")
	}
	return []byte("mode-" + string(rune('a'+int(m)-1))), nil
}

type opaque struct {
	values []string
}

func TestRenderPrimitives(t *testing.T) {
	t.Parallel()

	r := render.New(nil)
	anyParam := catalog.Param[any]("value")
	homepage, err := url.Parse("https://www.perdu.com/bar")
	require.NoError(t, err)
	template := "{Message}"
	when := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "Prop1Value", want: "Prop1Value"},
		{name: "windows path", value: `C:\toto.log`, want: `C:\toto.log`},
		{name: "int", value: 42, want: "42"},
		{name: "negative int8", value: int8(-3), want: "-3"},
		{name: "uint64", value: uint64(18446744073709551615), want: "18446744073709551615"},
		{name: "float", value: 1.5, want: "1.5"},
		{name: "float32", value: float32(0.25), want: "0.25"},
		{name: "true", value: true, want: "True"},
		{name: "false", value: false, want: "False"},
		{name: "level", value: level.Warning, want: "Warning"},
		{name: "url pointer", value: homepage, want: "https://www.perdu.com/bar"},
		{name: "url value", value: *homepage, want: "https://www.perdu.com/bar"},
		{name: "duration", value: 90 * time.Second, want: "00:01:30"},
		{name: "time", value: when, want: "2024-03-01T10:30:00Z"},
		{name: "pointer to string", value: &template, want: "{Message}"},
		{name: "named uint", value: port(8080), want: "8080"},
		{name: "text marshaler", value: mode(2), want: "mode-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := r.Render(tt.value, anyParam)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderNamedAccessors(t *testing.T) {
	t.Parallel()

	r := render.New(testdummies.NewRegistry())
	themeParam := testdummies.DummyConsoleSink.Params[1]
	formatterParam := testdummies.DummyWithFormatterSink.Params[1]

	tests := []struct {
		name  string
		value any
		param catalog.Parameter
		want  string
	}{
		{
			name:  "theme property",
			value: testdummies.Theme1,
			param: themeParam,
			want:  "TestDummies.Console.Themes.ConsoleThemes::Theme1, TestDummies",
		},
		{
			name:  "theme field",
			value: testdummies.Theme1Field,
			param: themeParam,
			want:  "TestDummies.Console.Themes.ConsoleThemes::Theme1Field, TestDummies",
		},
		{
			name:  "formatter property",
			value: testdummies.Formatter,
			param: formatterParam,
			want:  "TestDummies.Formatting.CustomFormatters::Formatter, TestDummies",
		},
		{
			name:  "formatter field",
			value: testdummies.FormatterField,
			param: formatterParam,
			want:  "TestDummies.Formatting.CustomFormatters::FormatterField, TestDummies",
		},
		{
			name:  "default constructed theme",
			value: &testdummies.MyCustomConsoleTheme{},
			param: themeParam,
			want:  "TestDummies.Console.Themes.MyCustomConsoleTheme, TestDummies",
		},
		{
			name:  "default constructed formatter",
			value: &testdummies.MyCustomTextFormatter{},
			param: formatterParam,
			want:  "TestDummies.Formatting.MyCustomTextFormatter, TestDummies",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := r.Render(tt.value, tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderFailures(t *testing.T) {
	t.Parallel()

	r := render.New(testdummies.NewRegistry())
	themeParam := testdummies.DummyConsoleSink.Params[1]

	t.Run("customised instance of a constructible type", func(t *testing.T) {
		t.Parallel()
		_, err := r.Render(&testdummies.MyCustomConsoleTheme{Prefix: ">"}, themeParam)
		require.ErrorIs(t, err, render.ErrCannotRender)
		assert.Contains(t, err.Error(), "theme")
	})

	t.Run("unregistered struct", func(t *testing.T) {
		t.Parallel()
		_, err := r.Render(opaque{values: []string{"a"}}, catalog.Param[any]("value"))
		require.ErrorIs(t, err, render.ErrCannotRender)
	})

	t.Run("unregistered theme of a primitive kind", func(t *testing.T) {
		t.Parallel()
		_, err := r.Render(stringTheme("dark"), themeParam)
		require.ErrorIs(t, err, render.ErrCannotRender)
		assert.Contains(t, err.Error(), "theme")

		_, err = render.New(nil).Render(stringTheme("dark"), themeParam)
		require.ErrorIs(t, err, render.ErrCannotRender)
	})

	t.Run("text marshaler kept for empty interface", func(t *testing.T) {
		t.Parallel()
		got, err := r.Render(stringTheme("dark"), catalog.Param[any]("value"))
		require.NoError(t, err)
		assert.Equal(t, "dark", got)
	})

	t.Run("accessor ignored for concrete parameter", func(t *testing.T) {
		t.Parallel()
		_, err := r.Render(&testdummies.MyCustomConsoleTheme{}, catalog.Param[*testdummies.MyCustomConsoleTheme]("theme"))
		require.ErrorIs(t, err, render.ErrCannotRender)
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		_, err := r.Render(nil, themeParam)
		require.ErrorIs(t, err, render.ErrNilValue)

		var s *string
		_, err = r.Render(s, catalog.Param[*string]("outputTemplate"))
		require.ErrorIs(t, err, render.ErrNilValue)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()
		_, err := r.Render(level.Level(17), catalog.Param[level.Level]("minimumLevel"))
		require.ErrorIs(t, err, render.ErrCannotRender)
	})

	t.Run("failing text marshaler", func(t *testing.T) {
		t.Parallel()
		_, err := r.Render(mode(0), catalog.Param[mode]("mode"))
		require.ErrorIs(t, err, render.ErrCannotRender)
	})
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{5 * time.Second, "00:00:05"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "02:03:04"},
		{26 * time.Hour, "1.02:00:00"},
		{1500 * time.Millisecond, "00:00:01.5000000"},
		{-90 * time.Minute, "-01:30:00"},
		{250 * time.Nanosecond, "00:00:00.0000002"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, render.FormatDuration(tt.d), tt.d.String())
	}
}
