package inspect

import (
	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
)

// Inspector classifies calls relative to a core module.
type Inspector struct {
	coreModule string
}

// New returns an inspector treating coreModule as a module whose methods need
// no reference. Methods of catalog.CoreModule, which declares the built-in
// vocabulary, never need one. An empty name means catalog.CoreModule alone.
func New(coreModule string) *Inspector {
	if coreModule == "" {
		coreModule = catalog.CoreModule
	}
	return &Inspector{coreModule: coreModule}
}

// CoreModule returns the module treated as core.
func (i *Inspector) CoreModule() string {
	return i.coreModule
}

// Classify returns the key prefix of call and whether it requires a module
// reference.
func (i *Inspector) Classify(call catalog.ConfigurationCall) (prefix string, requiresModuleReference bool) {
	module := call.Module()
	requiresModuleReference = module != i.coreModule && module != catalog.CoreModule

	switch {
	case call.Category == catalog.CategoryMinimumLevelOverride:
		return call.Category.String() + ":override:" + call.Target, requiresModuleReference
	case call.Category == catalog.CategoryMinimumLevel, call.Category == catalog.CategoryMinimumLevelIs:
		return call.Category.String(), requiresModuleReference
	case IsWithProperty(call):
		return call.Category.String() + ":with-property:" + call.Target, requiresModuleReference
	default:
		return call.Category.String() + ":" + call.MethodName(), requiresModuleReference
	}
}

// FixedKey reports whether call emits a single pair under its bare prefix
// instead of one pair per argument.
func FixedKey(call catalog.ConfigurationCall) bool {
	switch call.Category {
	case catalog.CategoryMinimumLevel, catalog.CategoryMinimumLevelIs, catalog.CategoryMinimumLevelOverride:
		return true
	default:
		return IsWithProperty(call)
	}
}

// IsWithProperty reports whether call is the core WithProperty enricher.
func IsWithProperty(call catalog.ConfigurationCall) bool {
	return call.Category == catalog.CategoryEnrich && call.Method == catalog.WithProperty
}
