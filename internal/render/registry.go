package render

import (
	"fmt"
	"sync"
)

// FallbackKind is the component the shell mounts when a window references
// an unregistered renderer. It must always resolve; an unknown component
// kind degrades to a visible placeholder, never a crash.
const FallbackKind = "Fallback"

// View is the mount instruction handed to the frontend for one window's
// content area.
type View struct {
	Kind     string                 `json:"kind"`
	Props    map[string]interface{} `json:"props,omitempty"`
	Fallback bool                   `json:"fallback,omitempty"`
	Message  string                 `json:"message,omitempty"`
}

// Factory builds the view for a component kind from a window's props
type Factory func(props map[string]interface{}) View

// Registry maps component kinds to renderer factories. Lookups are string
// keyed like the original's dynamic imports, but the map is explicit and
// validated at registration time.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a renderer registry with the built-in fallback
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.factories[FallbackKind] = func(props map[string]interface{}) View {
		return View{
			Kind:     FallbackKind,
			Props:    props,
			Fallback: true,
			Message:  "No renderer is registered for this window",
		}
	}
	return r
}

// Register adds a factory for a component kind. Empty kinds and nil
// factories are configuration errors, caught here rather than at mount
// time.
func (r *Registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return fmt.Errorf("component kind cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory for %s cannot be nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("component kind already registered: %s", kind)
	}
	r.factories[kind] = factory
	return nil
}

// Kinds returns the registered component kinds, fallback included
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Resolve returns the view for a component kind. Unknown kinds produce the
// fallback placeholder view carrying the requested kind's name.
func (r *Registry) Resolve(kind string, props map[string]interface{}) View {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	if !ok {
		factory = r.factories[FallbackKind]
	}
	r.mu.RUnlock()

	view := factory(props)
	if !ok {
		view.Fallback = true
		view.Message = fmt.Sprintf("No renderer is registered for %q", kind)
	}
	return view
}
