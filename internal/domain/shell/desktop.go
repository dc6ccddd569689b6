package shell

import "github.com/zerobloat/shell/internal/domain/shortcut"

// DesktopIcon is one cell of the desktop grid, in registry insertion order
type DesktopIcon struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Desktop projects the shortcut registry onto the icon grid. Like the
// taskbar it recomputes on every call and issues commands back through the
// start menu's launch path.
type Desktop struct {
	shortcuts *shortcut.Registry
	menu      *StartMenu
	translate Translator
}

// NewDesktop creates the desktop icon projection
func NewDesktop(shortcuts *shortcut.Registry, menu *StartMenu, translate Translator) *Desktop {
	return &Desktop{
		shortcuts: shortcuts,
		menu:      menu,
		translate: translate,
	}
}

// Icons lists the desktop grid in insertion order
func (d *Desktop) Icons() []DesktopIcon {
	shortcuts := d.shortcuts.List()
	icons := make([]DesktopIcon, 0, len(shortcuts))
	for _, sc := range shortcuts {
		icons = append(icons, DesktopIcon{
			ID:    sc.ID,
			Label: d.translate.T(sc.Label, sc.Label),
			Icon:  sc.Icon,
		})
	}
	return icons
}

// Open launches the window behind a desktop icon (double-click)
func (d *Desktop) Open(shortcutID string) bool {
	_, ok := d.menu.Launch(shortcutID)
	return ok
}
