package catalog

import (
	"fmt"
	"reflect"
)

// Parameter is one declared parameter of a Method.
type Parameter struct {
	Name string
	// Type is the declared parameter type. Interface types enable named
	// accessor and constructible type rendering.
	Type       reflect.Type
	Default    any
	HasDefault bool
}

// Param declares a required parameter of type T.
func Param[T any](name string) Parameter {
	return Parameter{Name: name, Type: reflect.TypeFor[T]()}
}

// Optional declares a parameter of type T with a declared default.
func Optional[T any](name string, def T) Parameter {
	return Parameter{Name: name, Type: reflect.TypeFor[T](), Default: def, HasDefault: true}
}

// IsInterface reports whether the parameter is typed as an interface.
func (p Parameter) IsInterface() bool {
	return p.Type != nil && p.Type.Kind() == reflect.Interface
}

// IsDefault reports whether v equals the declared default of the parameter.
// Any nil value (untyped or a typed nil pointer) equals a nil default.
func (p Parameter) IsDefault(v any) bool {
	if !p.HasDefault {
		return false
	}
	defNil, valNil := isNil(p.Default), isNil(v)
	if defNil || valNil {
		return defNil && valNil
	}
	return reflect.DeepEqual(p.Default, v)
}

func (p Parameter) accepts(v any) bool {
	if p.Type == nil {
		return true
	}
	if v == nil {
		switch p.Type.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return true
		default:
			return false
		}
	}
	return reflect.TypeOf(v).AssignableTo(p.Type)
}

// Binding pairs a declared parameter with the argument bound to it.
type Binding struct {
	Parameter Parameter
	Value     any
}

// Method is the static schema of one fluent configuration call.
type Method struct {
	Surface Surface
	Module  string
	Name    string
	Params  []Parameter
}

// Define validates and returns a method definition.
func Define(surface Surface, module, name string, params ...Parameter) (*Method, error) {
	m := &Method{Surface: surface, Module: module, Name: name, Params: params}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustDefine works like Define but panics on an invalid definition.
// Meant for package-level extension declarations.
func MustDefine(surface Surface, module, name string, params ...Parameter) *Method {
	m, err := Define(surface, module, name, params...)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return m
}

// String returns "Module::Name".
func (m *Method) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.Module + "::" + m.Name
}

// Invoke captures a call of the method with positional arguments. Trailing
// arguments may be omitted when their parameters declare a default.
func (m *Method) Invoke(args ...any) Invocation {
	return Invocation{Method: m, Args: args}
}

// Bind resolves positional arguments against the declared parameters. The
// result keeps declaration order and omits arguments equal to their default.
func (m *Method) Bind(args []any) ([]Binding, error) {
	if len(args) > len(m.Params) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArgumentCount, m, len(m.Params), len(args))
	}

	bindings := make([]Binding, 0, len(m.Params))
	for i, p := range m.Params {
		var v any
		switch {
		case i < len(args):
			v = args[i]
		case p.HasDefault:
			v = p.Default
		default:
			return nil, fmt.Errorf("%w: %s requires %q", ErrArgumentCount, m, p.Name)
		}

		if !p.accepts(v) {
			return nil, fmt.Errorf("%w: %s.%s expects %s, got %T", ErrArgumentType, m, p.Name, p.Type, v)
		}
		if p.IsDefault(v) {
			continue
		}
		bindings = append(bindings, Binding{Parameter: p, Value: v})
	}
	return bindings, nil
}

func (m *Method) validate() error {
	switch {
	case m.Surface < SurfaceMinimumLevel || m.Surface > SurfaceFilter:
		return fmt.Errorf("%w: unknown surface %d", ErrInvalidMethod, int(m.Surface))
	case m.Module == "":
		return fmt.Errorf("%w: empty module", ErrInvalidMethod)
	case m.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidMethod)
	}

	seen := make(map[string]struct{}, len(m.Params))
	optional := false
	for _, p := range m.Params {
		if p.Name == "" {
			return fmt.Errorf("%w: %s has an unnamed parameter", ErrInvalidMethod, m)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: %s declares %q twice", ErrInvalidMethod, m, p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.HasDefault {
			optional = true
		} else if optional {
			return fmt.Errorf("%w: %s declares required %q after an optional parameter", ErrInvalidMethod, m, p.Name)
		}
	}
	return nil
}

// Invocation is a method applied to positional arguments, as written in a
// configuration expression.
type Invocation struct {
	Method *Method
	Args   []any
}

// isNil reports whether v is nil or a nil value of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
