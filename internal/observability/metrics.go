package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "accident_map"

// Metrics - счетчики и гистограммы сервиса
type Metrics struct {
	// labels: outcome={found,empty,unresolved,failed,invalid}
	GeoJSONRequests *prometheus.CounterVec
	// labels: outcome={success,error,empty}
	GeocodeRequests *prometheus.CounterVec
	// labels: outcome={success,error}
	WarehouseQueries  *prometheus.CounterVec
	WarehouseDuration prometheus.Histogram
	SkippedRows       prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		GeoJSONRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geojson_requests_total",
			Help:      "GeoJSON requests by outcome.",
		}, []string{"outcome"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding requests by outcome.",
		}, []string{"outcome"}),
		WarehouseQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warehouse_queries_total",
			Help:      "Warehouse queries by outcome.",
		}, []string{"outcome"}),
		WarehouseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "warehouse_query_duration_seconds",
			Help:      "Warehouse query execution time in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		SkippedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_rows_total",
			Help:      "Rows dropped because their geometry could not be parsed.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.GeoJSONRequests,
		m.GeocodeRequests,
		m.WarehouseQueries,
		m.WarehouseDuration,
		m.SkippedRows,
	}
}

// NewMetrics создает метрики и регистрирует их в registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting создает метрики в отдельном реестре, чтобы тесты не паниковали
// на повторной регистрации.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
