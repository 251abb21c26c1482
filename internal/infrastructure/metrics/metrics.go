package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ResearchCatalog/internal/catalog"
)

const namespace = "research_catalog"

// Metrics owns a private registry with the catalog service collectors.
type Metrics struct {
	registry *prometheus.Registry

	CatalogRecords  *prometheus.GaugeVec
	CatalogLoads    *prometheus.CounterVec
	ViewRequests    *prometheus.CounterVec
	EventsReceived  *prometheus.CounterVec
	EventsStored    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New registers all collectors, plus Go and process metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{Namespace: namespace}),
		prometheus.NewGoCollector(),
	)

	m := &Metrics{
		registry: registry,
		CatalogRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_records",
			Help:      "Records in the active catalog snapshot.",
		}, []string{"module"}),
		CatalogLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_loads_total",
			Help:      "Catalog load attempts by result.",
		}, []string{"result"}),
		ViewRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_requests_total",
			Help:      "Dashboard view requests by module.",
		}, []string{"module"}),
		EventsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_received_total",
			Help:      "Telemetry events accepted by the collector.",
		}, []string{"type"}),
		EventsStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_stored_total",
			Help:      "Telemetry events written to the sink by result.",
		}, []string{"result"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}

	registry.MustRegister(
		m.CatalogRecords,
		m.CatalogLoads,
		m.ViewRequests,
		m.EventsReceived,
		m.EventsStored,
		m.RequestDuration,
	)
	return m
}

// ObserveSnapshot updates the record gauges. It matches catalog.Store.OnSwap.
func (m *Metrics) ObserveSnapshot(snap *catalog.Snapshot) {
	if snap == nil {
		return
	}
	m.CatalogRecords.WithLabelValues("congresos").Set(float64(len(snap.Congresses)))
	m.CatalogRecords.WithLabelValues("revistas").Set(float64(len(snap.Journals)))
}

// ObserveLoad counts a catalog load attempt.
func (m *Metrics) ObserveLoad(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.CatalogLoads.WithLabelValues(result).Inc()
}

// ObserveStored counts a sink write.
func (m *Metrics) ObserveStored(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.EventsStored.WithLabelValues(result).Inc()
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
