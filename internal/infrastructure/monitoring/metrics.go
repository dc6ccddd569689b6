package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the shell. Each collector gets
// its own registry so independent server instances never collide.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Window manager metrics
	WindowsOpen prometheus.Gauge
	WindowOps   *prometheus.CounterVec

	// Shortcut metrics
	Shortcuts prometheus.Gauge

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// Guest backend metrics
	GuestCalls  *prometheus.CounterVec
	GuestErrors *prometheus.CounterVec

	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry:  registry,
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shell_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),

		WindowsOpen: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "shell_windows_open",
				Help: "Number of currently open windows",
			},
		),
		WindowOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_window_operations_total",
				Help: "Window manager operations by kind",
			},
			[]string{"op"},
		),

		Shortcuts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "shell_shortcuts",
				Help: "Number of registered launch shortcuts",
			},
		),

		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "shell_ws_connections",
				Help: "Active WebSocket connections",
			},
		),
		WSMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_ws_messages_total",
				Help: "WebSocket messages by direction and type",
			},
			[]string{"direction", "type"},
		),

		GuestCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_guest_calls_total",
				Help: "Guest backend calls by operation",
			},
			[]string{"op"},
		),
		GuestErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shell_guest_errors_total",
				Help: "Guest backend failures by operation",
			},
			[]string{"op"},
		),
	}
}

// Handler serves this collector's registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records a completed HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordWindowOp counts one window manager operation
func (m *Metrics) RecordWindowOp(op string) {
	m.WindowOps.WithLabelValues(op).Inc()
}

// SetWindowsOpen updates the open-window gauge
func (m *Metrics) SetWindowsOpen(count int) {
	m.WindowsOpen.Set(float64(count))
}

// SetShortcuts updates the shortcut gauge
func (m *Metrics) SetShortcuts(count int) {
	m.Shortcuts.Set(float64(count))
}

// RecordWSMessage counts one websocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}

// RecordGuestCall counts one guest backend call, with its outcome
func (m *Metrics) RecordGuestCall(op string, err error) {
	m.GuestCalls.WithLabelValues(op).Inc()
	if err != nil {
		m.GuestErrors.WithLabelValues(op).Inc()
	}
}

// Uptime returns time since the collector was created
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.startTime)
}
