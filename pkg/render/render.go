package render

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
	"github.com/dmitrymomot/settingsexpr/pkg/level"
)

// Renderer renders argument values using the named accessors and
// constructible types of a registry.
type Renderer struct {
	reg *catalog.Registry
}

// New returns a renderer backed by reg. A nil registry disables accessor and
// constructible type rendering.
func New(reg *catalog.Registry) *Renderer {
	return &Renderer{reg: reg}
}

// Render returns the canonical text of value bound to parameter p.
func (r *Renderer) Render(value any, p catalog.Parameter) (string, error) {
	value, ok := deref(value)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNilValue, p.Name)
	}

	if s, ok := builtin(value); ok {
		return s, nil
	}

	if p.IsInterface() && r.reg != nil {
		if a, ok := r.reg.LookupAccessor(value); ok {
			return fmt.Sprintf("%s::%s, %s", a.DeclaringType, a.Member, a.Module), nil
		}
		if t, ok := r.reg.LookupType(value); ok {
			return fmt.Sprintf("%s, %s", t.FullName, t.Module), nil
		}
	}

	// A behavioral interface can only be rebuilt from an accessor or a type.
	if p.IsInterface() && p.Type.NumMethod() > 0 {
		return "", fmt.Errorf("%w: %s of type %T is neither a named value nor a constructible type", ErrCannotRender, p.Name, value)
	}

	if m, ok := value.(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrCannotRender, p.Name, err)
		}
		return string(text), nil
	}

	if s, ok := byKind(value); ok {
		return s, nil
	}

	return "", fmt.Errorf("%w: %s of type %T", ErrCannotRender, p.Name, value)
}

// builtin renders the predeclared and well-known standard library types.
func builtin(value any) (string, bool) {
	switch v := value.(type) {
	case level.Level:
		return v.String(), v.Valid()
	case string:
		return v, true
	case bool:
		return formatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case time.Duration:
		return FormatDuration(v), true
	case time.Time:
		return v.Format(time.RFC3339Nano), true
	case url.URL:
		return v.String(), true
	case *url.URL:
		return v.String(), true
	}
	return "", false
}

// byKind renders named types by their underlying primitive kind.
func byKind(value any) (string, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return formatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()), true
	}
	return "", false
}

// formatBool renders True or False, the casing settings loaders expect.
func formatBool(b bool) string {
	return cases.Title(language.Und).String(strconv.FormatBool(b))
}

// deref unwraps pointers to primitive values. It reports false for nil.
// Pointers to other kinds are kept since their identity matters.
func deref(value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		if _, ok := value.(*url.URL); ok {
			return value, true
		}
		elem := rv.Elem()
		if !isPrimitiveKind(elem.Kind()) {
			return value, true
		}
		value, rv = elem.Interface(), elem
	}
	return value, true
}

func isPrimitiveKind(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
