package tool

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry maps names to Tool instances. Registration happens during startup;
// lookups afterwards are read-only and safe for concurrent use. Aliasing is
// registering the same instance under multiple names.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool under its own name plus any aliases. Later
// registrations overwrite earlier ones for the same name.
func (r *Registry) Register(t Tool, aliases ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
	for _, alias := range aliases {
		r.tools[alias] = t
	}
}

// Lookup returns the tool registered under name, if any.
func (r *Registry) Lookup(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Names returns all registered names (aliases included) in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke dispatches input to the named tool and returns its output verbatim.
// It never returns an error: an unknown or empty name yields a "not found"
// marker string, which the loop appends as an observation so the model sees
// its own mistake and may replan.
func (r *Registry) Invoke(ctx context.Context, name, input string) string {
	t, ok := r.Lookup(name)
	if !ok {
		return NotFoundOutput(name)
	}
	return t.Invoke(ctx, input)
}

// NotFoundOutput is the observation text produced for unregistered tool
// names. Kept as a function so callers and tests agree on the marker.
func NotFoundOutput(name string) string {
	if name == "" {
		return "Error: tool not found (no tool name given)."
	}
	return fmt.Sprintf("Error: tool %q not found.", name)
}
