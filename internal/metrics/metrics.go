package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	SessionsActive    prometheus.Gauge
	Selections        prometheus.Counter
	SelectionsCleared prometheus.Counter
	SectionChanges    *prometheus.CounterVec
	QRRendered        prometheus.Counter
}

// New creates all metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "nostos_sessions_active",
			Help: "Number of live screen sessions",
		}),
		Selections: f.NewCounter(prometheus.CounterOpts{
			Name: "nostos_selections_total",
			Help: "Total number of marker selections",
		}),
		SelectionsCleared: f.NewCounter(prometheus.CounterOpts{
			Name: "nostos_selections_cleared_total",
			Help: "Total number of disclosure close gestures",
		}),
		SectionChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "nostos_section_changes_total",
			Help: "Total number of navigation changes by target section",
		}, []string{"section"}),
		QRRendered: f.NewCounter(prometheus.CounterOpts{
			Name: "nostos_qr_rendered_total",
			Help: "Total number of disclosure QR codes rendered",
		}),
	}
}
