// Package guest is the HTTP client for the backend that owns the managed
// virtual machine.
//
// The shell treats it as a black box: start/stop/status of the VM process,
// host drive and folder listing, connecting (mount) and disconnecting the
// guest image, and listing/deleting removable apps inside it. Nothing in
// this package touches the window or shortcut registries; the server layer
// sequences those effects (mount success adds a drive shortcut, eject
// removes it).
package guest
