// Package metrics holds the Prometheus collectors of the booking service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreated   *prometheus.CounterVec
	BookingsRejected  *prometheus.CounterVec
	BookingsCancelled prometheus.Counter
	CacheFallbacks    *prometheus.CounterVec
	EventsPublished   *prometheus.CounterVec

	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge
	DBWaitDurationTotal prometheus.Gauge
}

// New регистрирует коллекторы в стандартном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует коллекторы в переданном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings accepted by the validator",
			ConstLabels: constLabels,
		}, []string{"status"}),
		BookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Booking requests rejected by validation",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		BookingsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Bookings transitioned to cancelled",
			ConstLabels: constLabels,
		}),
		CacheFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_cache_fallbacks_total",
			Help:        "Reads served from the last-known-good snapshot",
			ConstLabels: constLabels,
		}, []string{"result"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_events_published_total",
			Help:        "Booking events handed to the broker",
			ConstLabels: constLabels,
		}, []string{"type", "result"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle database connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),
		DBWaitDurationTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_duration_seconds",
			Help:        "Total time blocked waiting for a connection",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreated,
		m.BookingsRejected,
		m.BookingsCancelled,
		m.CacheFallbacks,
		m.EventsPublished,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBWaitDurationTotal,
	)

	return m
}

// Методы ниже безопасны для nil-получателя: метрики могут быть выключены в конфиге

func (m *Metrics) BookingCreated(status string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(status).Inc()
}

func (m *Metrics) BookingRejected(kind string) {
	if m == nil {
		return
	}
	m.BookingsRejected.WithLabelValues(kind).Inc()
}

func (m *Metrics) BookingCancelled() {
	if m == nil {
		return
	}
	m.BookingsCancelled.Inc()
}

func (m *Metrics) CacheFallback(result string) {
	if m == nil {
		return
	}
	m.CacheFallbacks.WithLabelValues(result).Inc()
}

func (m *Metrics) EventPublished(eventType, result string) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(eventType, result).Inc()
}
