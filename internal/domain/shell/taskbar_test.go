package shell

import (
	"testing"

	"github.com/zerobloat/shell/internal/domain/window"
	"github.com/zerobloat/shell/internal/shared/types"
)

func TestItemsLaunchOrderIsStable(t *testing.T) {
	m := window.NewManager()
	taskbar := NewTaskbar(m)

	m.Open(types.OpenRequest{ID: "a", Title: "A", Component: "Settings"})
	m.Open(types.OpenRequest{ID: "b", Title: "B", Component: "ThisPC"})
	m.Focus("a") // raises a above b, taskbar order must not change

	items := taskbar.Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Errorf("Expected launch order a,b; got %s,%s", items[0].ID, items[1].ID)
	}
	if !items[0].Active {
		t.Error("Refocused window should be marked active")
	}
}

func TestItemsIncludeMinimized(t *testing.T) {
	m := window.NewManager()
	taskbar := NewTaskbar(m)

	m.Open(types.OpenRequest{ID: "a", Component: "Settings"})
	m.Minimize("a")

	items := taskbar.Items()
	if len(items) != 1 {
		t.Fatalf("Minimized windows stay on the taskbar, got %d items", len(items))
	}
	if !items[0].Minimized || items[0].Active {
		t.Errorf("Expected minimized inactive item, got %+v", items[0])
	}
}

func TestClickTogglesActiveWindow(t *testing.T) {
	m := window.NewManager()
	taskbar := NewTaskbar(m)
	m.Open(types.OpenRequest{ID: "a", Component: "Settings"})

	// Active + normal: click hides
	taskbar.Click("a")
	win, _ := m.Get("a")
	if win.State != types.StateMinimized {
		t.Fatalf("Click on active window should minimize, got %s", win.State)
	}

	// Minimized: click restores and raises
	taskbar.Click("a")
	win, _ = m.Get("a")
	if win.State != types.StateNormal {
		t.Fatalf("Click on minimized window should focus, got %s", win.State)
	}

	snapshot := m.Snapshot()
	if snapshot.ActiveID == nil || *snapshot.ActiveID != "a" {
		t.Error("Clicked window should become active")
	}
}

func TestClickFocusesBackgroundWindow(t *testing.T) {
	m := window.NewManager()
	taskbar := NewTaskbar(m)
	m.Open(types.OpenRequest{ID: "a", Component: "Settings"})
	m.Open(types.OpenRequest{ID: "b", Component: "ThisPC"})

	taskbar.Click("a")

	snapshot := m.Snapshot()
	if *snapshot.ActiveID != "a" {
		t.Errorf("Background window should be focused, active=%s", *snapshot.ActiveID)
	}
	win, _ := m.Get("a")
	if win.State != types.StateNormal {
		t.Errorf("Focused window should stay normal, got %s", win.State)
	}
}

func TestClickMaximizedFocusesWithoutRestore(t *testing.T) {
	m := window.NewManager()
	taskbar := NewTaskbar(m)
	m.Open(types.OpenRequest{ID: "a", Component: "Settings"})
	m.ToggleMaximize("a")

	// Active but maximized: click focuses, never un-maximizes
	taskbar.Click("a")
	win, _ := m.Get("a")
	if win.State != types.StateMaximized {
		t.Errorf("Click must not change maximized state, got %s", win.State)
	}
}

func TestClickUnknownIDIsNoop(t *testing.T) {
	m := window.NewManager()
	taskbar := NewTaskbar(m)
	m.Open(types.OpenRequest{ID: "a", Component: "Settings"})
	before := m.Snapshot()

	taskbar.Click("ghost")

	after := m.Snapshot()
	if len(after.Windows) != len(before.Windows) || *after.ActiveID != *before.ActiveID {
		t.Error("Clicking a stale taskbar icon must leave the registry unchanged")
	}
}
