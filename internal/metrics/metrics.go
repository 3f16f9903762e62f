// Package metrics exposes Prometheus metrics for the realtime feed:
//
//   - feed_messages_received_total{kind} – inbound messages by kind
//   - feed_parse_errors_total            – malformed frames dropped
//   - feed_reconnects_total              – reconnect attempts scheduled
//   - feed_pings_total                   – heartbeat echoes sent
//   - feed_connection_state              – 0=disconnected .. 3=connected
//   - feed_notifications_total{consumer,outcome} – admitted/dropped events
//
// All collectors are registered in init() and served by promhttp at the
// path configured under metrics.path.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	messagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_messages_received_total",
			Help: "Inbound messages by kind",
		},
		[]string{"kind"},
	)

	parseErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_parse_errors_total",
			Help: "Malformed frames dropped",
		},
	)

	reconnects = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_reconnects_total",
			Help: "Reconnect attempts scheduled after abnormal close",
		},
	)

	pings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_pings_total",
			Help: "Heartbeat echoes sent in reply to server pings",
		},
	)

	connectionState = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_connection_state",
			Help: "Connection lifecycle state (0=disconnected, 1=connecting, 2=authenticating, 3=connected)",
		},
	)

	// outcomes: shown, duplicate, stale, filtered
	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_notifications_total",
			Help: "Notification events by consumer and outcome",
		},
		[]string{"consumer", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(messagesReceived, parseErrors, reconnects, pings)
	prometheus.MustRegister(connectionState, notifications)
}

// MessageReceived records one inbound message of the given kind.
func MessageReceived(kind string) { messagesReceived.WithLabelValues(kind).Inc() }

// ParseError records one dropped malformed frame.
func ParseError() { parseErrors.Inc() }

// Reconnect records one scheduled reconnect attempt.
func Reconnect() { reconnects.Inc() }

// Ping records one heartbeat echo.
func Ping() { pings.Inc() }

// ConnectionState publishes the current supervisor state.
func ConnectionState(s int) { connectionState.Set(float64(s)) }

// Notification records one consumer decision about an event.
func Notification(consumer, outcome string) {
	notifications.WithLabelValues(consumer, outcome).Inc()
}
