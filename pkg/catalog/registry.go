package catalog

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Accessor is a named static value that reproduces a specific instance.
type Accessor struct {
	Value         any
	DeclaringType string
	Member        string
	Module        string
}

// ConstructibleType is a concrete type a loader can instantiate directly
// through its parameterless constructor.
type ConstructibleType struct {
	FullName string
	Module   string
	New      func() any

	typ reflect.Type
}

type methodKey struct {
	surface Surface
	module  string
	name    string
}

// Registry is the plugin-registration table: supported methods, named
// accessors and default-constructible types.
type Registry struct {
	mu        sync.RWMutex
	methods   map[*Method]struct{}
	names     map[methodKey][]*Method
	accessors []Accessor
	types     []ConstructibleType
}

// NewRegistry returns a registry that already holds the core vocabulary.
func NewRegistry() *Registry {
	r := &Registry{
		methods: make(map[*Method]struct{}),
		names:   make(map[methodKey][]*Method),
	}
	r.MustRegister(CoreMethods()...)
	return r
}

// Register adds methods to the table. Registering the same method twice is a
// no-op. Overloads sharing a surface, module and name are allowed as long as
// their parameter lists differ.
func (r *Registry) Register(methods ...*Method) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range methods {
		if m == nil {
			return fmt.Errorf("%w: nil method", ErrInvalidMethod)
		}
		if err := m.validate(); err != nil {
			return err
		}
		if _, ok := r.methods[m]; ok {
			continue
		}
		key := methodKey{surface: m.Surface, module: m.Module, name: m.Name}
		for _, existing := range r.names[key] {
			if sameSignature(existing, m) {
				return fmt.Errorf("%w: %s on %s", ErrDuplicateMethod, m, m.Surface)
			}
		}
		r.names[key] = append(r.names[key], m)
		r.methods[m] = struct{}{}
	}
	return nil
}

// MustRegister works like Register but panics on failure.
func (r *Registry) MustRegister(methods ...*Method) {
	if err := r.Register(methods...); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

// Has reports whether m itself has been registered.
func (r *Registry) Has(m *Method) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.methods[m]
	return ok
}

// Overloads returns the registered methods with the given surface, module and
// name, in registration order.
func (r *Registry) Overloads(surface Surface, module, name string) []*Method {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names[methodKey{surface: surface, module: module, name: name}])
}

// RegisterAccessor records that value is reachable as declaringType::member
// in module. When several accessors hold the same instance, the first
// registered one wins.
func (r *Registry) RegisterAccessor(value any, declaringType, member, module string) error {
	switch {
	case isNil(value):
		return fmt.Errorf("%w: %s::%s holds nil", ErrInvalidAccessor, declaringType, member)
	case declaringType == "" || member == "" || module == "":
		return fmt.Errorf("%w: declaring type, member and module are required", ErrInvalidAccessor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.accessors = append(r.accessors, Accessor{
		Value:         value,
		DeclaringType: declaringType,
		Member:        member,
		Module:        module,
	})
	return nil
}

// MustRegisterAccessor works like RegisterAccessor but panics on failure.
func (r *Registry) MustRegisterAccessor(value any, declaringType, member, module string) {
	if err := r.RegisterAccessor(value, declaringType, member, module); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

// RegisterType records a concrete type a loader can build with its
// parameterless constructor. newFn must return a fresh default instance.
func (r *Registry) RegisterType(fullName, module string, newFn func() any) error {
	if fullName == "" || module == "" {
		return fmt.Errorf("%w: full name and module are required", ErrInvalidType)
	}
	if newFn == nil {
		return fmt.Errorf("%w: %s has no constructor", ErrInvalidType, fullName)
	}
	sample := newFn()
	if isNil(sample) {
		return fmt.Errorf("%w: constructor of %s returned nil", ErrInvalidType, fullName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, ConstructibleType{
		FullName: fullName,
		Module:   module,
		New:      newFn,
		typ:      reflect.TypeOf(sample),
	})
	return nil
}

// MustRegisterType works like RegisterType but panics on failure.
func (r *Registry) MustRegisterType(fullName, module string, newFn func() any) {
	if err := r.RegisterType(fullName, module, newFn); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

// LookupAccessor returns the first accessor holding the very instance v.
func (r *Registry) LookupAccessor(v any) (Accessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accessors {
		if sameInstance(a.Value, v) {
			return a, true
		}
	}
	return Accessor{}, false
}

// LookupType returns the first registered type of v whose parameterless
// constructor produces a value equal to v.
func (r *Registry) LookupType(v any) (ConstructibleType, bool) {
	if isNil(v) {
		return ConstructibleType{}, false
	}
	typ := reflect.TypeOf(v)

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.types {
		if t.typ != typ {
			continue
		}
		if reflect.DeepEqual(t.New(), v) {
			return t, true
		}
	}
	return ConstructibleType{}, false
}

func sameSignature(a, b *Method) bool {
	return slices.EqualFunc(a.Params, b.Params, func(x, y Parameter) bool {
		return x.Name == y.Name && x.Type == y.Type
	})
}

// sameInstance compares by identity: address for reference kinds, == for
// other comparable values.
func sameInstance(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Func, reflect.Slice:
		return false
	}
	if !va.Type().Comparable() {
		return false
	}
	return va.Equal(vb)
}
