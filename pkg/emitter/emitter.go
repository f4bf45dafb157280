package emitter

import (
	"fmt"

	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
	"github.com/dmitrymomot/settingsexpr/pkg/inspect"
	"github.com/dmitrymomot/settingsexpr/pkg/render"
)

// UsingPrefix prefixes module reference keys.
const UsingPrefix = "using:"

// KeyValuePair is one emitted setting.
type KeyValuePair struct {
	Key   string
	Value string
}

// Emitter turns recorded calls into key/value pairs.
type Emitter struct {
	inspector *inspect.Inspector
	renderer  *render.Renderer
}

// New returns an emitter using inspector to classify calls and renderer to
// render their arguments.
func New(inspector *inspect.Inspector, renderer *render.Renderer) *Emitter {
	return &Emitter{inspector: inspector, renderer: renderer}
}

// Emit returns the pairs for calls, in call order.
func (e *Emitter) Emit(calls []catalog.ConfigurationCall) ([]KeyValuePair, error) {
	pairs := make([]KeyValuePair, 0, len(calls)*2)
	referenced := make(map[string]struct{})

	for _, call := range calls {
		prefix, needsReference := e.inspector.Classify(call)

		if needsReference {
			module := call.Module()
			if _, ok := referenced[module]; !ok {
				referenced[module] = struct{}{}
				pairs = append(pairs, KeyValuePair{Key: UsingPrefix + module, Value: module})
			}
		}

		callPairs, err := e.emitCall(call, prefix)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, callPairs...)
	}

	return pairs, nil
}

func (e *Emitter) emitCall(call catalog.ConfigurationCall, prefix string) ([]KeyValuePair, error) {
	switch {
	case call.Category == catalog.CategoryMinimumLevel:
		return []KeyValuePair{{Key: prefix, Value: call.MethodName()}}, nil
	case call.Category == catalog.CategoryMinimumLevelIs, call.Category == catalog.CategoryMinimumLevelOverride:
		return e.single(call, prefix, "minimumLevel")
	case inspect.IsWithProperty(call):
		if b, ok := call.Binding("destructureObjects"); ok {
			if destructure, _ := b.Value.(bool); destructure {
				return nil, fmt.Errorf("%w: %s with destructureObjects", ErrUnrepresentable, call.Method)
			}
		}
		return e.single(call, prefix, "value")
	}

	if len(call.Bindings) == 0 {
		return []KeyValuePair{{Key: prefix, Value: ""}}, nil
	}

	pairs := make([]KeyValuePair, 0, len(call.Bindings))
	for _, b := range call.Bindings {
		key := prefix + "." + b.Parameter.Name
		value, err := e.renderer.Render(b.Value, b.Parameter)
		if err != nil {
			return nil, &ArgumentError{Method: call.Method.String(), Parameter: b.Parameter.Name, Key: key, Err: err}
		}
		pairs = append(pairs, KeyValuePair{Key: key, Value: value})
	}
	return pairs, nil
}

// single emits the fixed-key pair holding the argument bound to param.
func (e *Emitter) single(call catalog.ConfigurationCall, key, param string) ([]KeyValuePair, error) {
	b, ok := call.Binding(param)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %q argument", ErrUnrepresentable, call.Method, param)
	}
	value, err := e.renderer.Render(b.Value, b.Parameter)
	if err != nil {
		return nil, &ArgumentError{Method: call.Method.String(), Parameter: param, Key: key, Err: err}
	}
	return []KeyValuePair{{Key: key, Value: value}}, nil
}
