package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del servicio.
// Cada instancia tiene su propio registry (los tests crean varios routers).
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	BirdsSaved       prometheus.Counter
	SightingsCreated prometheus.Counter
	NotFound         *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bird_sightings_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bird_sightings_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		BirdsSaved: f.NewCounter(prometheus.CounterOpts{
			Name: "bird_sightings_birds_saved_total",
			Help: "Total number of birds created or overwritten",
		}),
		SightingsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "bird_sightings_sightings_created_total",
			Help: "Total number of sightings persisted",
		}),
		NotFound: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bird_sightings_not_found_total",
			Help: "Lookups answered with 404, by entity",
		}, []string{"entity"}),
	}
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest registra una request terminada.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncBirdsSaved() {
	if m == nil {
		return
	}
	m.BirdsSaved.Inc()
}

func (m *Metrics) IncSightingsCreated() {
	if m == nil {
		return
	}
	m.SightingsCreated.Inc()
}

// IncNotFound cuenta un 404 de dominio para entity ("bird" o "sighting").
func (m *Metrics) IncNotFound(entity string) {
	if m == nil {
		return
	}
	m.NotFound.WithLabelValues(entity).Inc()
}
