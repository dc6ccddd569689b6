// Package server wires the shell backend together: configuration, logging,
// metrics, the window and shortcut registries, the guest backend client,
// and the HTTP/WebSocket API surface.
package server
