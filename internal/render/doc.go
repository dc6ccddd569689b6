// Package render resolves component kinds and icon keys to frontend
// assets.
//
// The registry replaces the original's ad hoc string-keyed dynamic imports
// with an explicit factory map validated at registration. Resolution is
// total: unknown component kinds yield a visible fallback placeholder and
// unknown icon keys yield a generic icon, so a stale shortcut can never
// crash the shell.
package render
