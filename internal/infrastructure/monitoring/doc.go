// Package monitoring provides Prometheus metrics for the shell backend.
//
// Collected:
//   - HTTP request counts and latencies (gin middleware)
//   - Open window gauge and per-operation counters
//   - Shortcut registry size
//   - WebSocket connection gauge and message counters
//   - Guest backend call/error counters
//
// Metrics are exposed on /metrics in the Prometheus text format.
package monitoring
