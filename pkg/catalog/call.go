package catalog

// ConfigurationCall is one recorded invocation, ready to be turned into
// key/value pairs.
type ConfigurationCall struct {
	Category Category
	Method   *Method
	// Bindings holds the remaining arguments in declared parameter order,
	// without arguments equal to their declared default.
	Bindings []Binding
	// Target is the override source for CategoryMinimumLevelOverride and the
	// property name for the core WithProperty enricher.
	Target string
}

// MethodName returns the invoked method's name.
func (c ConfigurationCall) MethodName() string {
	return c.Method.Name
}

// Module returns the module declaring the invoked method.
func (c ConfigurationCall) Module() string {
	return c.Method.Module
}

// Binding returns the argument bound to the named parameter.
func (c ConfigurationCall) Binding(name string) (Binding, bool) {
	for _, b := range c.Bindings {
		if b.Parameter.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}
