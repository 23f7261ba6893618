// Package metrics содержит Prometheus-метрики сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnsOpen     *prometheus.GaugeVec
	dbConnsInUse    *prometheus.GaugeVec
	dbConnsIdle     *prometheus.GaugeVec

	slotsGeneratedTotal     *prometheus.CounterVec
	filterDegradationsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbConnsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		}, []string{"service"}),

		dbConnsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),

		dbConnsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		}, []string{"service"}),

		slotsGeneratedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_slots_generated_total",
			Help: "Total number of generated schedule slots",
		}, []string{"service"}),

		filterDegradationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_filter_degradations_total",
			Help: "Total number of filter pipeline degradations to an empty result",
		}, []string{"service", "stage"}),
	}
}

// NewNoop создает набор метрик, не зарегистрированный в Prometheus registry
// Используется, когда сбор метрик выключен конфигурацией: вызывающий код
// работает с тем же API, но наружу ничего не экспортируется
func NewNoop() *Metrics {
	return &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
		}, []string{"service", "method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "db_query_duration_seconds",
		}, []string{"service", "operation"}),
		dbConnsOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
		}, []string{"service"}),
		dbConnsInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
		}, []string{"service"}),
		dbConnsIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
		}, []string{"service"}),
		slotsGeneratedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_slots_generated_total",
		}, []string{"service"}),
		filterDegradationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_filter_degradations_total",
		}, []string{"service", "stage"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBConnStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBConnStats(open, inUse, idle int) {
	m.dbConnsOpen.WithLabelValues(m.serviceName).Set(float64(open))
	m.dbConnsInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.dbConnsIdle.WithLabelValues(m.serviceName).Set(float64(idle))
}

// AddSlotsGenerated увеличивает счетчик сгенерированных слотов
func (m *Metrics) AddSlotsGenerated(count int) {
	m.slotsGeneratedTotal.WithLabelValues(m.serviceName).Add(float64(count))
}

// IncFilterDegradation увеличивает счетчик деградаций фильтра
// stage называет этап пайплайна, на котором произошла деградация
func (m *Metrics) IncFilterDegradation(stage string) {
	m.filterDegradationsTotal.WithLabelValues(m.serviceName, stage).Inc()
}
