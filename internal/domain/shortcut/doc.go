// Package shortcut provides the launch-template catalog for the shell.
//
// A shortcut describes how to construct a new window: component kind, label,
// icon, default geometry, and an optional props template. Shortcuts back the
// desktop icon grid and the start menu.
//
// Components:
//   - Registry: ordered catalog with duplicate rejection and subscriptions
//   - Seeder: loads the static YAML seed list and built-in defaults at start
//
// Lifecycle:
//   - Static shortcuts are seeded at shell start
//   - Dynamic shortcuts appear at runtime (e.g. a successfully mounted
//     drive) and disappear on explicit removal (eject)
//   - A shortcut is independent of windows spawned from it; its props
//     template is deep-copied at open time
package shortcut
