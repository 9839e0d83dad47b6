package shell

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the shell's Prometheus instruments.
type metrics struct {
	activeSessions prometheus.Gauge
	framesIn       *prometheus.CounterVec
	framesOut      prometheus.Counter
	frameErrors    prometheus.Counter
}

// newMetrics registers the shell metrics. A nil registerer yields inert
// instruments, which keeps tests from fighting over the default registry.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return &metrics{
			activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{Name: "noop_sessions"}),
			framesIn:       prometheus.NewCounterVec(prometheus.CounterOpts{Name: "noop_in"}, []string{"type"}),
			framesOut:      prometheus.NewCounter(prometheus.CounterOpts{Name: "noop_out"}),
			frameErrors:    prometheus.NewCounter(prometheus.CounterOpts{Name: "noop_err"}),
		}
	}

	factory := promauto.With(reg)
	return &metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "wardview",
			Subsystem: "shell",
			Name:      "active_sessions",
			Help:      "Number of connected dashboard sessions",
		}),
		framesIn: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wardview",
			Subsystem: "shell",
			Name:      "frames_received_total",
			Help:      "Inbound frames by type",
		}, []string{"type"}),
		framesOut: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "wardview",
			Subsystem: "shell",
			Name:      "frames_sent_total",
			Help:      "Outbound frames",
		}),
		frameErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "wardview",
			Subsystem: "shell",
			Name:      "frame_errors_total",
			Help:      "Frames dropped for decode or write errors",
		}),
	}
}
