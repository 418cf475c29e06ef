// Package metrics - prometheus метрики сервиса: HTTP, БД и доменные события.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	service string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	ReservationsCreated   *prometheus.CounterVec
	AvailabilityConflicts *prometheus.CounterVec
	StateTransitions      *prometheus.CounterVec
	PaymentsRecorded      *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		service: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency by operation",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation", "status"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections both in use and idle",
		}, []string{"service"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		ReservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_reservations_created_total",
			Help: "Reservations created by kind (reservation, walkin)",
		}, []string{"service", "kind"}),

		AvailabilityConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_availability_conflicts_total",
			Help: "Room assignments rejected because of overlapping stays",
		}, []string{"service", "operation"}),

		StateTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_reservation_transitions_total",
			Help: "Reservation state machine events",
		}, []string{"service", "event"}),

		PaymentsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_payments_recorded_total",
			Help: "Recorded deposits and payments",
		}, []string{"service", "kind"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.ReservationsCreated,
		m.AvailabilityConflicts,
		m.StateTransitions,
		m.PaymentsRecorded,
	)

	return m
}

// Service возвращает имя сервиса, используемое в label "service"
func (m *Metrics) Service() string {
	if m == nil {
		return ""
	}
	return m.service
}

// ReservationCreated учитывает созданное бронирование
func (m *Metrics) ReservationCreated(kind string) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(m.service, kind).Inc()
}

// AvailabilityConflict учитывает отказ из-за пересечения дат
func (m *Metrics) AvailabilityConflict(operation string) {
	if m == nil {
		return
	}
	m.AvailabilityConflicts.WithLabelValues(m.service, operation).Inc()
}

// Transition учитывает событие машины состояний (check_in, check_out, cancel, invoice, charge, consumption)
func (m *Metrics) Transition(event string) {
	if m == nil {
		return
	}
	m.StateTransitions.WithLabelValues(m.service, event).Inc()
}

// PaymentRecorded учитывает депозит или платеж
func (m *Metrics) PaymentRecorded(kind string) {
	if m == nil {
		return
	}
	m.PaymentsRecorded.WithLabelValues(m.service, kind).Inc()
}
