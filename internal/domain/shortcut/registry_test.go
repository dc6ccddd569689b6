package shortcut

import (
	"testing"

	"github.com/zerobloat/shell/internal/shared/types"
)

func TestAddKeepsInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Add(types.Shortcut{ID: "b", Component: "Settings"})
	r.Add(types.Shortcut{ID: "a", Component: "ThisPC"})
	r.Add(types.Shortcut{ID: "c", Component: "FileExplorer"})

	list := r.List()
	if len(list) != 3 {
		t.Fatalf("Expected 3 shortcuts, got %d", len(list))
	}
	for i, want := range []string{"b", "a", "c"} {
		if list[i].ID != want {
			t.Errorf("Expected %s at position %d, got %s", want, i, list[i].ID)
		}
	}
}

func TestAddRejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	r.Add(types.Shortcut{ID: "drive1", Label: "Original", Component: "FileExplorer"})

	if r.Add(types.Shortcut{ID: "drive1", Label: "Clobber", Component: "Settings"}) {
		t.Error("Duplicate add should be rejected")
	}

	existing, _ := r.Get("drive1")
	if existing.Label != "Original" {
		t.Errorf("Existing entry must be kept, got %s", existing.Label)
	}
}

func TestAddRejectsEmptyID(t *testing.T) {
	r := NewRegistry()
	if r.Add(types.Shortcut{Component: "Settings"}) {
		t.Error("Empty ID should be rejected")
	}
}

func TestRemove(t *testing.T) {
	r := NewRegistry()
	r.Add(types.Shortcut{ID: "a", Component: "Settings"})
	r.Add(types.Shortcut{ID: "b", Component: "ThisPC"})

	if !r.Remove("a") {
		t.Fatal("Remove failed")
	}
	if r.Remove("a") {
		t.Error("Removing twice should report no effect")
	}

	list := r.List()
	if len(list) != 1 || list[0].ID != "b" {
		t.Errorf("Expected only 'b' remaining, got %v", list)
	}
}

func TestOpenRequestCopiesProps(t *testing.T) {
	r := NewRegistry()
	r.Add(types.Shortcut{
		ID:        "drive1",
		Label:     "Drive X",
		Component: "FileExplorer",
		Props:     map[string]interface{}{"initialPath": "/mnt/x"},
	})

	request, ok := r.OpenRequest("drive1")
	if !ok {
		t.Fatal("OpenRequest failed")
	}
	if request.Props["initialPath"] != "/mnt/x" {
		t.Errorf("Expected props template copied, got %v", request.Props)
	}

	// Mutating the request must not reach the registry
	request.Props["initialPath"] = "/mnt/y"
	shortcut, _ := r.Get("drive1")
	if shortcut.Props["initialPath"] != "/mnt/x" {
		t.Error("Registry template must be isolated from request mutation")
	}

	// Removing the shortcut later has zero effect on the issued request
	r.Remove("drive1")
	if request.Props["initialPath"] != "/mnt/y" {
		t.Error("Issued request must be independent of the registry")
	}
}

func TestOpenRequestUnknownID(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.OpenRequest("ghost"); ok {
		t.Error("Unknown shortcut should not build a request")
	}
}

func TestSubscribe(t *testing.T) {
	r := NewRegistry()

	var lists [][]types.Shortcut
	unsubscribe := r.Subscribe(func(list []types.Shortcut) {
		lists = append(lists, list)
	})

	r.Add(types.Shortcut{ID: "a", Component: "Settings"})
	r.Remove("a")
	r.Remove("a") // no-op, no notification

	if len(lists) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(lists))
	}
	if len(lists[0]) != 1 || len(lists[1]) != 0 {
		t.Error("Notifications should carry the committed list")
	}

	unsubscribe()
	r.Add(types.Shortcut{ID: "b", Component: "ThisPC"})
	if len(lists) != 2 {
		t.Error("Unsubscribed listener must not be called")
	}
}
