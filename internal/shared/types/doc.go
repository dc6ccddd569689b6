// Package types defines the shared data model for the desktop shell.
//
// Core Types:
//   - Window: an open application surface with geometry, state, and stacking order
//   - Shortcut: a reusable launch template (desktop/start-menu icon)
//   - OpenRequest: command payload for opening a window
//
// Window State Machine:
//   - normal: regular frame at Window.Geometry
//   - minimized: hidden, excluded from focus derivation
//   - maximized: viewport-filling, pre-maximize frame kept in SavedGeometry
//
// ZOrder is a strictly increasing logical token assigned by the window
// manager; it determines stacking and focus priority and is never reused.
package types
