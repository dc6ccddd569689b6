package window

import "github.com/zerobloat/shell/internal/shared/types"

// Active derives the active window from a snapshot: the window with the
// greatest ZOrder among all non-minimized windows, or nil if none qualify.
//
// This is a pure derivation over registry state. The result is never stored
// back as a flag on a descriptor; a cached "active" bit and the stacking
// order would inevitably drift apart.
func Active(windows []types.Window) *types.Window {
	var active *types.Window
	for i := range windows {
		win := &windows[i]
		if win.State == types.StateMinimized {
			continue
		}
		if active == nil || win.ZOrder > active.ZOrder {
			active = win
		}
	}
	return active
}
