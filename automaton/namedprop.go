package automaton

// namedPropEntry stores one named property's value alongside its
// destructor, invoked when the entry is overwritten or removed.
type namedPropEntry struct {
	value   interface{}
	destroy func()
}

// SetNamedProp attaches value under key, invoking destroy (which may be
// nil) when key is later overwritten, removed, or the automaton is closed.
// Per spec.md §4.E this is how auxiliary per-automaton annotations (state
// names, highlight maps, origin traces) ride along without the core
// knowing their type.
func SetNamedProp[T any](a *Automaton, key string, value T, destroy func(T)) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if old, ok := a.named[key]; ok && old.destroy != nil {
		old.destroy()
	}

	entry := namedPropEntry{value: value}
	if destroy != nil {
		entry.destroy = func() { destroy(value) }
	}
	a.named[key] = entry
}

// GetNamedProp retrieves the value stored under key, reporting false if
// key is absent or was stored under a different type.
func GetNamedProp[T any](a *Automaton, key string) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var zero T
	entry, ok := a.named[key]
	if !ok {
		return zero, false
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, false
	}

	return v, true
}

// RemoveNamedProp invokes key's destructor, if any, and removes the entry.
func RemoveNamedProp(a *Automaton, key string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if old, ok := a.named[key]; ok {
		if old.destroy != nil {
			old.destroy()
		}
		delete(a.named, key)
	}
}

// Close invokes every remaining named property's destructor and clears the
// registry. Named properties are exclusively owned by their automaton per
// spec.md §3, so this must run when the automaton itself is discarded.
func (a *Automaton) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for k, entry := range a.named {
		if entry.destroy != nil {
			entry.destroy()
		}
		delete(a.named, k)
	}
}
