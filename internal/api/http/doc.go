// Package http provides Gin handlers for the shell REST API.
//
// Surface:
//   - Window lifecycle: open, close, focus, minimize, minimize-all,
//     maximize toggle, move, resize
//   - Taskbar and start menu projections of the window stack
//   - Shortcut registration and desktop icons
//   - Renderer resolution for window content
//   - Guest backend proxy: VM lifecycle, image mount/unmount, app cleanup
package http
