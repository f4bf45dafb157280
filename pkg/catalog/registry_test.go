package catalog_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
)

type theme struct {
	name string
}

type plainTheme struct {
	Indent int
}

func TestRegistryMethods(t *testing.T) {
	t.Parallel()

	t.Run("core vocabulary is preregistered", func(t *testing.T) {
		t.Parallel()
		reg := catalog.NewRegistry()
		for _, m := range catalog.CoreMethods() {
			assert.True(t, reg.Has(m), m.String())
		}
	})

	t.Run("register and lookup", func(t *testing.T) {
		t.Parallel()
		reg := catalog.NewRegistry()
		assert.False(t, reg.Has(rollingFile))

		require.NoError(t, reg.Register(rollingFile))
		require.NoError(t, reg.Register(rollingFile), "same method twice is a no-op")
		assert.True(t, reg.Has(rollingFile))

		overloads := reg.Overloads(catalog.SurfaceSink, "Fixtures", "RollingFile")
		require.Len(t, overloads, 1)
		assert.Same(t, rollingFile, overloads[0])
	})

	t.Run("overloads with distinct parameters", func(t *testing.T) {
		t.Parallel()
		reg := catalog.NewRegistry()
		require.NoError(t, reg.Register(rollingFile))

		overload := catalog.MustDefine(catalog.SurfaceSink, "Fixtures", "RollingFile",
			catalog.Param[int]("size"),
		)
		require.NoError(t, reg.Register(overload))
		assert.Len(t, reg.Overloads(catalog.SurfaceSink, "Fixtures", "RollingFile"), 2)
	})

	t.Run("conflicting definition", func(t *testing.T) {
		t.Parallel()
		reg := catalog.NewRegistry()
		require.NoError(t, reg.Register(rollingFile))

		clash := catalog.MustDefine(catalog.SurfaceSink, "Fixtures", "RollingFile", rollingFile.Params...)
		require.ErrorIs(t, reg.Register(clash), catalog.ErrDuplicateMethod)
		assert.False(t, reg.Has(clash))
	})

	t.Run("nil method", func(t *testing.T) {
		t.Parallel()
		reg := catalog.NewRegistry()
		require.ErrorIs(t, reg.Register(nil), catalog.ErrInvalidMethod)
		assert.Panics(t, func() { reg.MustRegister(nil) })
	})
}

func TestRegistryAccessors(t *testing.T) {
	t.Parallel()

	first := &theme{name: "first"}
	second := &theme{name: "second"}
	lookalike := &theme{name: "first"}

	reg := catalog.NewRegistry()
	reg.MustRegisterAccessor(first, "Themes", "First", "Fixtures")
	reg.MustRegisterAccessor(second, "Themes", "Second", "Fixtures")
	reg.MustRegisterAccessor(first, "Themes", "FirstField", "Fixtures")
	reg.MustRegisterAccessor(plainTheme{Indent: 4}, "Themes", "Indented", "Fixtures")

	t.Run("matches by identity", func(t *testing.T) {
		a, ok := reg.LookupAccessor(second)
		require.True(t, ok)
		assert.Equal(t, "Second", a.Member)

		_, ok = reg.LookupAccessor(lookalike)
		assert.False(t, ok, "equal but distinct pointer must not match")
	})

	t.Run("first registration wins", func(t *testing.T) {
		a, ok := reg.LookupAccessor(first)
		require.True(t, ok)
		assert.Equal(t, "First", a.Member)
	})

	t.Run("comparable values match by equality", func(t *testing.T) {
		a, ok := reg.LookupAccessor(plainTheme{Indent: 4})
		require.True(t, ok)
		assert.Equal(t, "Indented", a.Member)

		_, ok = reg.LookupAccessor(plainTheme{Indent: 2})
		assert.False(t, ok)
	})

	t.Run("invalid registrations", func(t *testing.T) {
		require.ErrorIs(t, reg.RegisterAccessor(nil, "T", "M", "Mod"), catalog.ErrInvalidAccessor)
		require.ErrorIs(t, reg.RegisterAccessor((*theme)(nil), "T", "M", "Mod"), catalog.ErrInvalidAccessor)
		require.ErrorIs(t, reg.RegisterAccessor(first, "", "M", "Mod"), catalog.ErrInvalidAccessor)
	})
}

func TestRegistryTypes(t *testing.T) {
	t.Parallel()

	reg := catalog.NewRegistry()
	reg.MustRegisterType("Fixtures.PlainTheme", "Fixtures", func() any { return &plainTheme{} })

	t.Run("default constructed instance", func(t *testing.T) {
		t.Parallel()
		typ, ok := reg.LookupType(&plainTheme{})
		require.True(t, ok)
		assert.Equal(t, "Fixtures.PlainTheme", typ.FullName)
		assert.Equal(t, "Fixtures", typ.Module)
	})

	t.Run("customised instance does not match", func(t *testing.T) {
		t.Parallel()
		_, ok := reg.LookupType(&plainTheme{Indent: 8})
		assert.False(t, ok)
	})

	t.Run("other type does not match", func(t *testing.T) {
		t.Parallel()
		_, ok := reg.LookupType(plainTheme{})
		assert.False(t, ok)
		_, ok = reg.LookupType(nil)
		assert.False(t, ok)
	})

	t.Run("invalid registrations", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, reg.RegisterType("", "Fixtures", func() any { return 1 }), catalog.ErrInvalidType)
		require.ErrorIs(t, reg.RegisterType("X", "Fixtures", nil), catalog.ErrInvalidType)
		require.ErrorIs(t, reg.RegisterType("X", "Fixtures", func() any { return nil }), catalog.ErrInvalidType)
	})
}

func TestRegistryConcurrentLookups(t *testing.T) {
	t.Parallel()

	reg := catalog.NewRegistry()
	reg.MustRegister(rollingFile)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, reg.Has(rollingFile))
			_, _ = reg.LookupAccessor(&theme{})
		}()
	}
	wg.Wait()
}
