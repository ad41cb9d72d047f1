// Package metrics registers the Prometheus collectors exposed by hlxd and
// hlxsimd on their respective /metrics endpoints. It knows nothing about
// the controllers or the exchange manager that feed it; they hold a
// *Metrics and call its recording methods directly, the same way a
// *slog.Logger gets handed around rather than threading an event bus
// through every layer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector this module exposes. A nil *Metrics is
// valid everywhere it is used: all recording methods are nil-receiver
// safe, so wiring it in is opt-in and callers never need a nil check of
// their own.
type Metrics struct {
	ConnectionsActive prometheus.Gauge
	FramesDispatched  *prometheus.CounterVec
	DispatchDuration  *prometheus.HistogramVec
	ExchangeTimeouts  prometheus.Counter
	ConfigSaves       *prometheus.CounterVec
}

// New registers every collector against reg. A nil reg registers against
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ConnectionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hlx_connections_active",
			Help: "Number of transport connections currently being served.",
		}),
		FramesDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hlx_frames_dispatched_total",
			Help: "Inbound frames routed to a handler, labeled by catalog verb name.",
		}, []string{"verb"}),
		DispatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hlx_dispatch_duration_seconds",
			Help:    "Time spent inside a dispatched handler, labeled by catalog verb name.",
			Buckets: prometheus.DefBuckets,
		}, []string{"verb"}),
		ExchangeTimeouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "hlx_exchange_timeouts_total",
			Help: "Client exchanges that exhausted their retry budget without a matching response.",
		}),
		ConfigSaves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hlx_config_saves_total",
			Help: "Configuration persistence attempts, labeled ok or error.",
		}, []string{"result"}),
	}
}

// ObserveDispatch records one handled frame and how long its handler took.
// verb is the matched catalog entry's Name, or "unmatched" for a frame that
// fell through to the universal error response.
func (m *Metrics) ObserveDispatch(verb string, d time.Duration) {
	if m == nil {
		return
	}
	m.FramesDispatched.WithLabelValues(verb).Inc()
	m.DispatchDuration.WithLabelValues(verb).Observe(d.Seconds())
}

// IncExchangeTimeout records one client exchange giving up after its retry
// budget (if any) was exhausted.
func (m *Metrics) IncExchangeTimeout() {
	if m == nil {
		return
	}
	m.ExchangeTimeouts.Inc()
}

// ObserveConfigSave records one persist() attempt, result being "ok" or
// "error".
func (m *Metrics) ObserveConfigSave(result string) {
	if m == nil {
		return
	}
	m.ConfigSaves.WithLabelValues(result).Inc()
}

// SetConnectionsActive reports the current connection count. cmd/hlxd and
// cmd/hlxsimd call it from a periodic ticker.
func (m *Metrics) SetConnectionsActive(n int) {
	if m == nil {
		return
	}
	m.ConnectionsActive.Set(float64(n))
}
