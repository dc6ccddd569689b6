// Package middleware provides shared Gin middleware: CORS for the shell
// frontend and per-IP rate limiting.
package middleware
