package shortcut

import (
	"log"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/zerobloat/shell/internal/shared/types"
)

// Seeder populates the registry at shell start: a static YAML seed list
// plus built-in system shortcuts. Dynamic shortcuts (mounted drives) are
// added later at runtime and are not the seeder's concern.
type Seeder struct {
	registry *Registry
	seedPath string
}

// NewSeeder creates a new shortcut seeder
func NewSeeder(registry *Registry, seedPath string) *Seeder {
	return &Seeder{
		registry: registry,
		seedPath: seedPath,
	}
}

type seedFile struct {
	Shortcuts []seedEntry `yaml:"shortcuts"`
}

type seedEntry struct {
	ID        string                 `yaml:"id"`
	Label     string                 `yaml:"label"`
	Icon      string                 `yaml:"icon"`
	Component string                 `yaml:"component"`
	Geometry  *seedGeometry          `yaml:"geometry"`
	Props     map[string]interface{} `yaml:"props"`
}

type seedGeometry struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SeedShortcuts loads the YAML seed list, if configured and present
func (s *Seeder) SeedShortcuts() error {
	if s.seedPath == "" {
		return nil
	}

	data, err := os.ReadFile(s.seedPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Warning: Shortcut seed file not found: %s", s.seedPath)
			return nil
		}
		return err
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	var loaded, failed int
	for _, entry := range file.Shortcuts {
		if entry.ID == "" || entry.Component == "" {
			log.Printf("  Skipping seed entry with missing id/component")
			failed++
			continue
		}
		shortcut := types.Shortcut{
			ID:        entry.ID,
			Label:     entry.Label,
			Icon:      entry.Icon,
			Component: entry.Component,
			Geometry:  entry.geometry(),
			Props:     entry.Props,
		}
		if s.registry.Add(shortcut) {
			loaded++
		} else {
			log.Printf("  Duplicate shortcut id %s, keeping existing", entry.ID)
			failed++
		}
	}

	log.Printf("Shortcut seeding complete: %d loaded, %d skipped", loaded, failed)
	return nil
}

// SeedDefaults registers the essential system shortcuts if absent
func (s *Seeder) SeedDefaults() {
	defaults := []types.Shortcut{
		{
			ID:        "this-pc",
			Label:     "shortcut.this_pc",
			Icon:      "computer",
			Component: "ThisPC",
			Geometry:  grid(80, 60, 760, 520),
		},
		{
			ID:        "file-explorer",
			Label:     "shortcut.file_explorer",
			Icon:      "folder",
			Component: "FileExplorer",
			Geometry:  grid(120, 90, 820, 560),
			Props:     map[string]interface{}{"initialPath": "/"},
		},
		{
			ID:        "app-cleaner",
			Label:     "shortcut.app_cleaner",
			Icon:      "broom",
			Component: "AppCleaner",
			Geometry:  grid(160, 120, 700, 500),
		},
		{
			ID:        "settings",
			Label:     "shortcut.settings",
			Icon:      "gear",
			Component: "Settings",
			Geometry:  grid(200, 150, 620, 440),
		},
	}

	for _, shortcut := range defaults {
		s.registry.Add(shortcut)
	}
}

func (e seedEntry) geometry() types.Geometry {
	if e.Geometry == nil {
		return grid(120, 80, 720, 480)
	}
	return grid(e.Geometry.X, e.Geometry.Y, e.Geometry.Width, e.Geometry.Height)
}

func grid(x, y, width, height int) types.Geometry {
	return types.Geometry{
		Position: types.Position{X: x, Y: y},
		Size:     types.Size{Width: width, Height: height},
	}
}
