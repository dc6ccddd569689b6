package shell

import (
	"sort"

	"github.com/zerobloat/shell/internal/domain/window"
	"github.com/zerobloat/shell/internal/shared/types"
)

// TaskbarItem is the per-window projection shown in the taskbar. Minimized
// windows stay listed; only closing removes an item.
type TaskbarItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Icon      string `json:"icon"`
	Active    bool   `json:"is_active"`
	Minimized bool   `json:"is_minimized"`
}

// Taskbar is a read-only view over the window manager. It holds no state of
// its own; every call recomputes from the current snapshot.
type Taskbar struct {
	windows *window.Manager
}

// NewTaskbar creates the taskbar projection
func NewTaskbar(windows *window.Manager) *Taskbar {
	return &Taskbar{windows: windows}
}

// Items lists one entry per open window in launch order. Launch order is
// stable across refocusing, so taskbar buttons never jump around.
func (t *Taskbar) Items() []TaskbarItem {
	snapshot := t.windows.Snapshot()
	return ItemsFromSnapshot(snapshot)
}

// ItemsFromSnapshot projects a snapshot the manager already delivered,
// e.g. inside a subscription callback.
func ItemsFromSnapshot(snapshot window.Snapshot) []TaskbarItem {
	windows := make([]types.Window, len(snapshot.Windows))
	copy(windows, snapshot.Windows)
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].LaunchSeq < windows[j].LaunchSeq
	})

	items := make([]TaskbarItem, 0, len(windows))
	for _, win := range windows {
		item := TaskbarItem{
			ID:        win.ID,
			Title:     win.Title,
			Icon:      win.Icon,
			Minimized: win.State == types.StateMinimized,
		}
		if snapshot.ActiveID != nil && *snapshot.ActiveID == win.ID {
			item.Active = true
		}
		items = append(items, item)
	}
	return items
}

// Click applies the taskbar's defining toggle: an active, non-maximized,
// non-minimized window is minimized (toggle-hide); anything else is focused,
// which un-minimizes and raises it. Unknown IDs are silent no-ops.
func (t *Taskbar) Click(windowID string) {
	snapshot := t.windows.Snapshot()

	for _, win := range snapshot.Windows {
		if win.ID != windowID {
			continue
		}
		isActive := snapshot.ActiveID != nil && *snapshot.ActiveID == windowID
		if isActive && win.State == types.StateNormal {
			t.windows.Minimize(windowID)
		} else {
			t.windows.Focus(windowID)
		}
		return
	}
}
