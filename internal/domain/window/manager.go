package window

import (
	"sort"
	"sync"

	"github.com/zerobloat/shell/internal/infrastructure/monitoring"
	"github.com/zerobloat/shell/internal/shared/id"
	"github.com/zerobloat/shell/internal/shared/types"
)

// Listener receives the full desktop snapshot after every committed
// mutation. Listeners must not call back into the manager synchronously
// from inside the callback; they would observe the commit they are still
// reacting to. Dispatch the follow-up command on another goroutine instead.
type Listener func(Snapshot)

// Snapshot is an immutable view of the registry at one commit. Windows are
// ordered by ZOrder ascending (bottom of the stack first). ActiveID is
// always re-derived from the windows, never cached.
type Snapshot struct {
	Windows  []types.Window `json:"windows"`
	ActiveID *string        `json:"active_id,omitempty"`
}

// Manager is the authoritative registry of open windows.
//
// Every mutating operation is a total command: targeting a missing ID is a
// silent no-op, never an error. Races between a taskbar click and an
// asynchronous close are expected and must not destabilize the shell.
type Manager struct {
	mu        sync.Mutex
	windows   map[string]*types.Window // Protected by mu
	zCounter  uint64                   // Protected by mu; strictly increasing, never reused
	launchSeq uint64                   // Protected by mu
	defaults  types.Geometry
	newID     func() string
	metrics   *monitoring.Metrics

	listenerMu sync.Mutex
	listeners  map[uint64]Listener
	nextToken  uint64
}

// DefaultGeometry is used when an open request carries no geometry and the
// manager was constructed without explicit defaults.
var DefaultGeometry = types.Geometry{
	Position: types.Position{X: 120, Y: 80},
	Size:     types.Size{Width: 720, Height: 480},
}

// NewManager creates a new window manager
func NewManager() *Manager {
	return &Manager{
		windows:   make(map[string]*types.Window),
		defaults:  DefaultGeometry,
		newID:     func() string { return id.NewWindowID().String() },
		listeners: make(map[uint64]Listener),
	}
}

// WithDefaults overrides the fallback geometry for open requests
func (m *Manager) WithDefaults(geometry types.Geometry) *Manager {
	m.defaults = geometry
	return m
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// Subscribe registers a change listener and returns its unsubscribe func.
// The listener is invoked once per committed operation with the resulting
// snapshot; a batch operation such as MinimizeAll produces exactly one call.
func (m *Manager) Subscribe(listener Listener) func() {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()

	token := m.nextToken
	m.nextToken++
	m.listeners[token] = listener

	return func() {
		m.listenerMu.Lock()
		defer m.listenerMu.Unlock()
		delete(m.listeners, token)
	}
}

// Open creates a new window, or un-minimizes and refocuses the existing one
// when the request ID is already open (idempotent re-open, no duplicate).
// Returns the resulting descriptor.
func (m *Manager) Open(request types.OpenRequest) types.Window {
	m.mu.Lock()

	if existing, ok := m.windows[request.ID]; ok {
		if existing.State == types.StateMinimized {
			existing.State = types.StateNormal
		}
		existing.ZOrder = m.nextZOrder()
		win := copyWindow(existing)
		snapshot := m.snapshotLocked()
		m.mu.Unlock()

		m.recordOp("reopen")
		m.notify(snapshot)
		return win
	}

	geometry := m.defaults
	if request.Geometry != nil {
		geometry = *request.Geometry
	}

	windowID := request.ID
	if windowID == "" {
		windowID = m.newID()
	}

	m.launchSeq++
	win := &types.Window{
		ID:        windowID,
		Title:     request.Title,
		Icon:      request.Icon,
		Component: request.Component,
		Props:     types.CloneProps(request.Props),
		Geometry:  geometry,
		State:     types.StateNormal,
		ZOrder:    m.nextZOrder(),
		LaunchSeq: m.launchSeq,
	}
	m.windows[win.ID] = win

	result := copyWindow(win)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.recordOp("open")
	m.notify(snapshot)
	return result
}

// Close removes a window; no-op if the ID is absent
func (m *Manager) Close(windowID string) bool {
	m.mu.Lock()

	if _, ok := m.windows[windowID]; !ok {
		m.mu.Unlock()
		return false
	}
	delete(m.windows, windowID)

	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.recordOp("close")
	m.notify(snapshot)
	return true
}

// Minimize hides a window, preserving its geometry and stacking token.
// No-op if absent or already minimized.
func (m *Manager) Minimize(windowID string) bool {
	m.mu.Lock()

	win, ok := m.windows[windowID]
	if !ok || win.State == types.StateMinimized {
		m.mu.Unlock()
		return false
	}
	win.State = types.StateMinimized

	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.recordOp("minimize")
	m.notify(snapshot)
	return true
}

// MinimizeAll minimizes every window that is not already minimized,
// committed and observed as a single transition.
func (m *Manager) MinimizeAll() {
	m.mu.Lock()

	changed := false
	for _, win := range m.windows {
		if win.State != types.StateMinimized {
			win.State = types.StateMinimized
			changed = true
		}
	}
	if !changed {
		m.mu.Unlock()
		return
	}

	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.recordOp("minimize_all")
	m.notify(snapshot)
}

// Focus un-minimizes the window if needed and assigns a fresh stacking
// token, bringing it to the front. It never toggles the maximized state.
// No-op if absent.
func (m *Manager) Focus(windowID string) bool {
	m.mu.Lock()

	win, ok := m.windows[windowID]
	if !ok {
		m.mu.Unlock()
		return false
	}
	if win.State == types.StateMinimized {
		win.State = types.StateNormal
	}
	win.ZOrder = m.nextZOrder()

	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.recordOp("focus")
	m.notify(snapshot)
	return true
}

// ToggleMaximize switches between the maximized and regular frame.
// Entering maximized saves the current geometry; leaving restores it
// verbatim. The interaction is user-intentional, so it also refocuses.
// No-op if absent.
func (m *Manager) ToggleMaximize(windowID string) bool {
	m.mu.Lock()

	win, ok := m.windows[windowID]
	if !ok {
		m.mu.Unlock()
		return false
	}

	if win.State == types.StateMaximized {
		if win.SavedGeometry != nil {
			win.Geometry = *win.SavedGeometry
			win.SavedGeometry = nil
		}
		win.State = types.StateNormal
	} else {
		saved := win.Geometry
		win.SavedGeometry = &saved
		win.State = types.StateMaximized
	}
	win.ZOrder = m.nextZOrder()

	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.recordOp("toggle_maximize")
	m.notify(snapshot)
	return true
}

// Move updates the window position. The UI interaction layer reports only
// the final drop position; intermediate drag frames never reach the
// registry. No-op if absent or maximized.
func (m *Manager) Move(windowID string, position types.Position) bool {
	m.mu.Lock()

	win, ok := m.windows[windowID]
	if !ok || win.State == types.StateMaximized {
		m.mu.Unlock()
		return false
	}
	win.Geometry.Position = position

	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.recordOp("move")
	m.notify(snapshot)
	return true
}

// Resize updates the window size and, when the resize handle moved the
// origin, its position. No-op if absent or maximized.
func (m *Manager) Resize(windowID string, size types.Size, position *types.Position) bool {
	m.mu.Lock()

	win, ok := m.windows[windowID]
	if !ok || win.State == types.StateMaximized {
		m.mu.Unlock()
		return false
	}
	win.Geometry.Size = size
	if position != nil {
		win.Geometry.Position = *position
	}

	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.recordOp("resize")
	m.notify(snapshot)
	return true
}

// Get retrieves a window by ID
func (m *Manager) Get(windowID string) (types.Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	win, ok := m.windows[windowID]
	if !ok {
		return types.Window{}, false
	}
	return copyWindow(win), true
}

// Snapshot returns the current desktop state
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Stats returns manager statistics
func (m *Manager) Stats() types.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.snapshotLocked()
	minimized := 0
	for _, win := range snapshot.Windows {
		if win.State == types.StateMinimized {
			minimized++
		}
	}
	return types.Stats{
		TotalWindows:     len(snapshot.Windows),
		MinimizedWindows: minimized,
		ActiveWindowID:   snapshot.ActiveID,
	}
}

// nextZOrder must be called with mu held
func (m *Manager) nextZOrder() uint64 {
	m.zCounter++
	return m.zCounter
}

// snapshotLocked must be called with mu held
func (m *Manager) snapshotLocked() Snapshot {
	windows := make([]types.Window, 0, len(m.windows))
	for _, win := range m.windows {
		windows = append(windows, copyWindow(win))
	}
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].ZOrder < windows[j].ZOrder
	})

	snapshot := Snapshot{Windows: windows}
	if active := Active(windows); active != nil {
		activeID := active.ID
		snapshot.ActiveID = &activeID
	}
	return snapshot
}

// notify runs outside the registry lock so a slow listener cannot stall
// mutations, but calls remain sequential per commit.
func (m *Manager) notify(snapshot Snapshot) {
	m.listenerMu.Lock()
	listeners := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		listeners = append(listeners, l)
	}
	m.listenerMu.Unlock()

	for _, listener := range listeners {
		listener(snapshot)
	}

	if m.metrics != nil {
		m.metrics.SetWindowsOpen(len(snapshot.Windows))
	}
}

func (m *Manager) recordOp(op string) {
	if m.metrics != nil {
		m.metrics.RecordWindowOp(op)
	}
}

// copyWindow returns a deep copy to prevent external modifications
func copyWindow(win *types.Window) types.Window {
	out := *win
	out.Props = types.CloneProps(win.Props)
	if win.SavedGeometry != nil {
		saved := *win.SavedGeometry
		out.SavedGeometry = &saved
	}
	return out
}
