// Package ws streams shell state over WebSocket.
//
// Each committed window or shortcut change is pushed to every connection
// as a full snapshot; clients send the same commands the REST API accepts
// (open, focus, move, taskbar_click, ...) as JSON messages.
package ws
