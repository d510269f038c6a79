package keymap

// Resolver maps key strings to actions for one set of bindings. A key bound
// twice resolves to its last binding.
type Resolver struct {
	byKey map[string]Action
}

// NewResolver indexes bindings by key.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{byKey: make(map[string]Action, len(bindings)*2)}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.byKey[k] = b.Action
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" when key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key]
}
