// Package shell provides the read-only projections built on the window and
// shortcut registries: taskbar, start menu, and desktop icon grid.
//
// Projections hold no mutable state. They recompute from the current
// registry snapshot on every call and issue plain commands (open, focus,
// minimize) back into the window manager.
//
// Interactions:
//   - Taskbar.Click: active+normal window minimizes, anything else focuses
//   - StartMenu.Entries: case-insensitive substring filter on localized labels
//   - StartMenu.Launch / Desktop.Open: open a window from a shortcut template
package shell
