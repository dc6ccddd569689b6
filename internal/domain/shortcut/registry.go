package shortcut

import (
	"sync"

	"github.com/zerobloat/shell/internal/shared/types"
)

// Listener receives the full shortcut list after every committed change,
// in insertion order.
type Listener func([]types.Shortcut)

// Registry is the catalog of launch templates backing desktop icons and
// the start menu. Order is insertion order; grid layout depends on it, so
// the registry never sorts implicitly.
type Registry struct {
	mu        sync.RWMutex
	order     []string                  // Protected by mu; insertion order
	shortcuts map[string]types.Shortcut // Protected by mu

	listenerMu sync.Mutex
	listeners  map[uint64]Listener
	nextToken  uint64
}

// NewRegistry creates a new shortcut registry
func NewRegistry() *Registry {
	return &Registry{
		shortcuts: make(map[string]types.Shortcut),
		listeners: make(map[uint64]Listener),
	}
}

// Subscribe registers a change listener and returns its unsubscribe func
func (r *Registry) Subscribe(listener Listener) func() {
	r.listenerMu.Lock()
	defer r.listenerMu.Unlock()

	token := r.nextToken
	r.nextToken++
	r.listeners[token] = listener

	return func() {
		r.listenerMu.Lock()
		defer r.listenerMu.Unlock()
		delete(r.listeners, token)
	}
}

// Add appends a shortcut. A colliding ID is rejected and the existing
// entry kept: a live window may still reference the original template.
func (r *Registry) Add(shortcut types.Shortcut) bool {
	if shortcut.ID == "" {
		return false
	}

	r.mu.Lock()
	if _, exists := r.shortcuts[shortcut.ID]; exists {
		r.mu.Unlock()
		return false
	}
	shortcut.Props = types.CloneProps(shortcut.Props)
	r.shortcuts[shortcut.ID] = shortcut
	r.order = append(r.order, shortcut.ID)
	list := r.listLocked()
	r.mu.Unlock()

	r.notify(list)
	return true
}

// Remove deletes a shortcut. Windows already spawned from it are untouched.
// No-op if absent.
func (r *Registry) Remove(shortcutID string) bool {
	r.mu.Lock()
	if _, exists := r.shortcuts[shortcutID]; !exists {
		r.mu.Unlock()
		return false
	}
	delete(r.shortcuts, shortcutID)
	for i, existing := range r.order {
		if existing == shortcutID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	list := r.listLocked()
	r.mu.Unlock()

	r.notify(list)
	return true
}

// Get retrieves a shortcut by ID
func (r *Registry) Get(shortcutID string) (types.Shortcut, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shortcut, ok := r.shortcuts[shortcutID]
	if !ok {
		return types.Shortcut{}, false
	}
	shortcut.Props = types.CloneProps(shortcut.Props)
	return shortcut, true
}

// List returns all shortcuts in insertion order
func (r *Registry) List() []types.Shortcut {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

// OpenRequest builds a window open request from a shortcut, deep-copying
// the props template so later shortcut mutation cannot leak into the
// window. The window reuses the shortcut ID, which makes launching
// idempotent: clicking the same icon twice refocuses instead of
// duplicating.
func (r *Registry) OpenRequest(shortcutID string) (types.OpenRequest, bool) {
	shortcut, ok := r.Get(shortcutID)
	if !ok {
		return types.OpenRequest{}, false
	}

	return types.OpenRequest{
		ID:        shortcut.ID,
		Title:     shortcut.Label,
		Icon:      shortcut.Icon,
		Component: shortcut.Component,
		Props:     types.CloneProps(shortcut.Props),
		Geometry:  &shortcut.Geometry,
	}, true
}

// listLocked must be called with mu held (read or write)
func (r *Registry) listLocked() []types.Shortcut {
	out := make([]types.Shortcut, 0, len(r.order))
	for _, shortcutID := range r.order {
		shortcut := r.shortcuts[shortcutID]
		shortcut.Props = types.CloneProps(shortcut.Props)
		out = append(out, shortcut)
	}
	return out
}

func (r *Registry) notify(list []types.Shortcut) {
	r.listenerMu.Lock()
	listeners := make([]Listener, 0, len(r.listeners))
	for _, l := range r.listeners {
		listeners = append(listeners, l)
	}
	r.listenerMu.Unlock()

	for _, listener := range listeners {
		listener(list)
	}
}
