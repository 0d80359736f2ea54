package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ItineraryEstimates   *prometheus.CounterVec
	ItineraryValidations *prometheus.CounterVec
	NotesParsed          *prometheus.CounterVec
	SessionsCreated      *prometheus.CounterVec
	BudgetDegraded       prometheus.Counter
}

// New регистрирует метрики в глобальном registry Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в указанном registry
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		ItineraryEstimates: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "itinerary_estimates_total",
			Help:        "Duration estimates computed per booking mode",
			ConstLabels: constLabels,
		}, []string{"mode"}),

		ItineraryValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "itinerary_validations_total",
			Help:        "Itinerary validations per booking mode and outcome",
			ConstLabels: constLabels,
		}, []string{"mode", "valid"}),

		NotesParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "session_notes_parsed_total",
			Help:        "Session notes parsed, split by whether an itinerary header was recognized",
			ConstLabels: constLabels,
		}, []string{"mode", "recognized"}),

		SessionsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "sessions_created_total",
			Help:        "Sessions created per booking mode",
			ConstLabels: constLabels,
		}, []string{"mode"}),

		BudgetDegraded: factory.NewCounter(prometheus.CounterOpts{
			Name:        "budget_service_degraded_total",
			Help:        "Requests served with the default remaining hours because BudgetService was unavailable",
			ConstLabels: constLabels,
		}),
	}
}

// Методы ниже безопасны для nil *Metrics: метрики могут быть выключены в конфиге

// ObserveEstimate учитывает расчет длительности
func (m *Metrics) ObserveEstimate(mode string) {
	if m == nil {
		return
	}
	m.ItineraryEstimates.WithLabelValues(mode).Inc()
}

// ObserveValidation учитывает проверку маршрута
func (m *Metrics) ObserveValidation(mode string, valid bool) {
	if m == nil {
		return
	}
	m.ItineraryValidations.WithLabelValues(mode, strconv.FormatBool(valid)).Inc()
}

// ObserveNotesParsed учитывает разбор заметок
func (m *Metrics) ObserveNotesParsed(mode string, recognized bool) {
	if m == nil {
		return
	}
	m.NotesParsed.WithLabelValues(mode, strconv.FormatBool(recognized)).Inc()
}

// ObserveSessionCreated учитывает созданную сессию
func (m *Metrics) ObserveSessionCreated(mode string) {
	if m == nil {
		return
	}
	m.SessionsCreated.WithLabelValues(mode).Inc()
}

// ObserveBudgetDegraded учитывает ответ с остатком часов по умолчанию
func (m *Metrics) ObserveBudgetDegraded() {
	if m == nil {
		return
	}
	m.BudgetDegraded.Inc()
}
