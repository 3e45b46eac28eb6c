package nanolisp

// Env is a persistent chain of binding frames. A nil *Env is the empty
// environment. Frames are never modified after Extend returns, so an *Env
// may be shared freely between closures and calls.
type Env struct {
	names  []string
	values []Value
	parent *Env
}

// NewEnv builds a root environment from a map of bindings.
func NewEnv(bindings map[string]Value) *Env {
	if len(bindings) == 0 {
		return nil
	}
	names := make([]string, 0, len(bindings))
	values := make([]Value, 0, len(bindings))
	for name, val := range bindings {
		names = append(names, name)
		values = append(values, val)
	}
	return &Env{names: names, values: values}
}

// Extend returns a child environment binding names positionally to values.
// Later names in the same frame override earlier ones.
func (e *Env) Extend(names []string, values []Value) *Env {
	return &Env{names: names, values: values, parent: e}
}

// Define returns e with name bound to val.
func (e *Env) Define(name string, val Value) *Env {
	return e.Extend([]string{name}, []Value{val})
}

// Find looks name up from the innermost frame outwards.
func (e *Env) Find(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		for i := len(env.names) - 1; i >= 0; i-- {
			if env.names[i] == name {
				return env.values[i], true
			}
		}
	}
	return nil, false
}

