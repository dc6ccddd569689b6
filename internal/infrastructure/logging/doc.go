// Package logging configures structured logging on top of zap.
//
// Production builds emit JSON to stdout; development builds use the
// colored console encoder with debug level enabled.
package logging
