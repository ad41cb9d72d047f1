// Package admin mounts the operational HTTP surface alongside the protocol
// listener: health, Prometheus scraping, and a read-only status snapshot.
// None of it is part of the HLX wire protocol and none of it carries a
// mutating route; configuration changes only ever happen over the bracketed
// protocol a Dispatcher serves.
package admin

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusSource reports the three fields /status renders. Application
// satisfies it without this package importing internal/server, keeping the
// admin surface decoupled from the controller graph it describes.
type StatusSource interface {
	Dirty() bool
	ConnectionCount() int
}

type statusResponse struct {
	Dirty       bool   `json:"dirty"`
	Connections int    `json:"connections"`
	Uptime      string `json:"uptime"`
}

// NewRouter builds the admin router. gatherer is the registry metrics.New
// registered its collectors against (nil selects the global default
// registry, the form suited to a process with exactly one Metrics
// instance). start is the process start time, used to compute /status's
// uptime field.
func NewRouter(src StatusSource, gatherer prometheus.Gatherer, start time.Time) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		resp := statusResponse{
			Dirty:       src.Dirty(),
			Connections: src.ConnectionCount(),
			Uptime:      time.Since(start).Round(time.Second).String(),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	return r
}
