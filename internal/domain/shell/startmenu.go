package shell

import (
	"strings"

	"github.com/zerobloat/shell/internal/domain/shortcut"
	"github.com/zerobloat/shell/internal/domain/window"
	"github.com/zerobloat/shell/internal/shared/types"
)

// Translator resolves display strings for projections. The registry layer
// never localizes; labels are keys until they reach a view.
type Translator interface {
	T(key, fallback string) string
}

// StartMenuEntry is one launchable row in the start menu
type StartMenuEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// StartMenu is a filtered view over the shortcut registry. Selecting an
// entry opens a window built from the shortcut; closing the menu afterwards
// is the frontend's business, not the registry's.
type StartMenu struct {
	shortcuts *shortcut.Registry
	windows   *window.Manager
	translate Translator
}

// NewStartMenu creates the start menu projection
func NewStartMenu(shortcuts *shortcut.Registry, windows *window.Manager, translate Translator) *StartMenu {
	return &StartMenu{
		shortcuts: shortcuts,
		windows:   windows,
		translate: translate,
	}
}

// Entries returns shortcuts whose localized label contains the filter,
// case-insensitively. An empty filter lists everything, in registry order.
func (m *StartMenu) Entries(filter string) []StartMenuEntry {
	needle := strings.ToLower(strings.TrimSpace(filter))

	var entries []StartMenuEntry
	for _, sc := range m.shortcuts.List() {
		label := m.label(sc)
		if needle != "" && !strings.Contains(strings.ToLower(label), needle) {
			continue
		}
		entries = append(entries, StartMenuEntry{
			ID:    sc.ID,
			Label: label,
			Icon:  sc.Icon,
		})
	}
	return entries
}

// Launch opens a window from the named shortcut. Returns the resulting
// window descriptor, or false for an unknown shortcut.
func (m *StartMenu) Launch(shortcutID string) (types.Window, bool) {
	request, ok := m.shortcuts.OpenRequest(shortcutID)
	if !ok {
		return types.Window{}, false
	}
	request.Title = m.translate.T(request.Title, request.Title)
	return m.windows.Open(request), true
}

func (m *StartMenu) label(sc types.Shortcut) string {
	return m.translate.T(sc.Label, sc.Label)
}
