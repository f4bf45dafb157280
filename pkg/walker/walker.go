package walker

import (
	"fmt"

	"github.com/dmitrymomot/settingsexpr/pkg/builder"
	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
	"github.com/dmitrymomot/settingsexpr/pkg/level"
)

// Walk evaluates expr against a fresh recorder and returns the recorded calls
// in invocation order. A nil registry means the core vocabulary only.
func Walk(reg *catalog.Registry, expr builder.Expression) ([]catalog.ConfigurationCall, error) {
	if expr == nil {
		return nil, ErrNilExpression
	}
	if reg == nil {
		reg = catalog.NewRegistry()
	}

	r := &recorder{reg: reg}
	expr(r)
	if r.err != nil {
		return nil, r.err
	}
	return r.calls, nil
}

// recorder is the instrumented stand-in for the root builder.
type recorder struct {
	reg   *catalog.Registry
	calls []catalog.ConfigurationCall
	err   error
}

func (r *recorder) MinimumLevel() builder.MinimumLevelConfiguration { return minimumLevel{r} }
func (r *recorder) Enrich() builder.EnrichmentConfiguration         { return enrich{r} }
func (r *recorder) WriteTo() builder.SinkConfiguration               { return sinks{r, catalog.CategoryWriteTo} }
func (r *recorder) AuditTo() builder.SinkConfiguration               { return sinks{r, catalog.CategoryAuditTo} }
func (r *recorder) Filter() builder.FilterConfiguration              { return filter{r} }

func (r *recorder) record(category catalog.Category, inv catalog.Invocation) builder.LoggerConfiguration {
	if r.err != nil {
		return r
	}
	call, err := r.resolve(category, inv)
	if err != nil {
		r.err = err
		return r
	}
	r.calls = append(r.calls, call)
	return r
}

func (r *recorder) resolve(category catalog.Category, inv catalog.Invocation) (catalog.ConfigurationCall, error) {
	m := inv.Method
	if m == nil {
		return catalog.ConfigurationCall{}, fmt.Errorf("%w: nil method on %s", ErrUnsupportedMethod, category.Surface())
	}
	if !r.reg.Has(m) {
		return catalog.ConfigurationCall{}, fmt.Errorf("%w: %s", ErrUnsupportedMethod, m)
	}
	if m.Surface != category.Surface() {
		return catalog.ConfigurationCall{}, fmt.Errorf("%w: %s belongs to %s, invoked on %s",
			ErrSurfaceMismatch, m, m.Surface, category.Surface())
	}

	bindings, err := m.Bind(inv.Args)
	if err != nil {
		return catalog.ConfigurationCall{}, err
	}

	call := catalog.ConfigurationCall{Category: category, Method: m, Bindings: bindings}
	switch m {
	case catalog.MinimumLevelIs:
		call.Category = catalog.CategoryMinimumLevelIs
		return call, nil
	case catalog.MinimumLevelOverride:
		call.Category = catalog.CategoryMinimumLevelOverride
		call.Target, call.Bindings = takeTarget(bindings, "source")
	case catalog.WithProperty:
		call.Target, call.Bindings = takeTarget(bindings, "name")
	default:
		return call, nil
	}
	if call.Target == "" {
		return catalog.ConfigurationCall{}, fmt.Errorf("%w: %s", ErrEmptyTarget, m)
	}
	return call, nil
}

// takeTarget removes the named string binding and returns its value.
func takeTarget(bindings []catalog.Binding, name string) (string, []catalog.Binding) {
	rest := make([]catalog.Binding, 0, len(bindings))
	var target string
	for _, b := range bindings {
		if b.Parameter.Name == name {
			target, _ = b.Value.(string)
			continue
		}
		rest = append(rest, b)
	}
	return target, rest
}

type minimumLevel struct{ r *recorder }

func (m minimumLevel) Verbose() builder.LoggerConfiguration     { return m.bare(level.Verbose) }
func (m minimumLevel) Debug() builder.LoggerConfiguration       { return m.bare(level.Debug) }
func (m minimumLevel) Information() builder.LoggerConfiguration { return m.bare(level.Information) }
func (m minimumLevel) Warning() builder.LoggerConfiguration     { return m.bare(level.Warning) }
func (m minimumLevel) Error() builder.LoggerConfiguration       { return m.bare(level.Error) }
func (m minimumLevel) Fatal() builder.LoggerConfiguration       { return m.bare(level.Fatal) }

func (m minimumLevel) Is(l level.Level) builder.LoggerConfiguration {
	return m.r.record(catalog.CategoryMinimumLevel, catalog.MinimumLevelIs.Invoke(l))
}

func (m minimumLevel) Override(source string, l level.Level) builder.LoggerConfiguration {
	return m.r.record(catalog.CategoryMinimumLevel, catalog.MinimumLevelOverride.Invoke(source, l))
}

func (m minimumLevel) bare(l level.Level) builder.LoggerConfiguration {
	return m.r.record(catalog.CategoryMinimumLevel, catalog.LevelMethod(l).Invoke())
}

type enrich struct{ r *recorder }

func (e enrich) FromLogContext() builder.LoggerConfiguration {
	return e.r.record(catalog.CategoryEnrich, catalog.FromLogContext.Invoke())
}

func (e enrich) WithProperty(name string, value any, destructureObjects bool) builder.LoggerConfiguration {
	return e.r.record(catalog.CategoryEnrich, catalog.WithProperty.Invoke(name, value, destructureObjects))
}

func (e enrich) With(inv catalog.Invocation) builder.LoggerConfiguration {
	return e.r.record(catalog.CategoryEnrich, inv)
}

type sinks struct {
	r        *recorder
	category catalog.Category
}

func (s sinks) Sink(inv catalog.Invocation) builder.LoggerConfiguration {
	return s.r.record(s.category, inv)
}

type filter struct{ r *recorder }

func (f filter) With(inv catalog.Invocation) builder.LoggerConfiguration {
	return f.r.record(catalog.CategoryFilter, inv)
}
