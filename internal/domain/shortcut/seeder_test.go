package shortcut

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSeedDefaults(t *testing.T) {
	r := NewRegistry()
	NewSeeder(r, "").SeedDefaults()

	list := r.List()
	if len(list) != 4 {
		t.Fatalf("Expected 4 default shortcuts, got %d", len(list))
	}
	if list[0].ID != "this-pc" {
		t.Errorf("Expected this-pc first, got %s", list[0].ID)
	}
}

func TestSeedShortcutsFromFile(t *testing.T) {
	seed := `shortcuts:
  - id: drive-c
    label: Drive C
    icon: drive
    component: FileExplorer
    geometry:
      x: 10
      y: 20
      width: 400
      height: 300
    props:
      initialPath: /mnt/c
  - id: ""
    component: Broken
`
	path := filepath.Join(t.TempDir(), "shortcuts.yaml")
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := NewSeeder(r, path).SeedShortcuts(); err != nil {
		t.Fatalf("SeedShortcuts failed: %v", err)
	}

	list := r.List()
	if len(list) != 1 {
		t.Fatalf("Expected 1 seeded shortcut, got %d", len(list))
	}
	if list[0].Props["initialPath"] != "/mnt/c" {
		t.Errorf("Expected props template seeded, got %v", list[0].Props)
	}
	if list[0].Geometry.Size.Width != 400 {
		t.Errorf("Expected seeded geometry, got %+v", list[0].Geometry)
	}
}

func TestSeedShortcutsMissingFile(t *testing.T) {
	r := NewRegistry()
	if err := NewSeeder(r, "/nonexistent/shortcuts.yaml").SeedShortcuts(); err != nil {
		t.Errorf("Missing seed file should not be an error, got %v", err)
	}
}
