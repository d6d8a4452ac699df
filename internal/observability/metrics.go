package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	mineOperations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "minectl",
			Subsystem: "mine",
			Name:      "operations_total",
			Help:      "Completed mine operate runs.",
		},
	)
	subsystemCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "minectl",
			Subsystem: "subsystem",
			Name:      "calls_total",
			Help:      "Subsystem operation calls.",
		},
		[]string{"subsystem", "operation"},
	)
	productionRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "minectl",
			Subsystem: "production",
			Name:      "recorded_kg",
			Help:      "Kilograms of gold recorded. Non-positive records are not counted.",
		},
	)
	productionLast = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "minectl",
			Subsystem: "production",
			Name:      "last_recorded_kg",
			Help:      "Most recent recorded quantity, as given.",
		},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "minectl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "minectl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			mineOperations,
			subsystemCalls,
			productionRecorded,
			productionLast,
			httpRequests,
			httpDuration,
		)
	})
}

func RecordMineOperation() {
	RegisterMetrics()
	mineOperations.Inc()
}

func RecordSubsystemCall(subsystem, operation string) {
	RegisterMetrics()
	subsystemCalls.WithLabelValues(subsystem, operation).Inc()
}

// RecordProduction tracks a recorded quantity. Counters cannot decrease, so
// only positive values feed the running total.
func RecordProduction(quantity float64) {
	RegisterMetrics()
	productionLast.Set(quantity)
	if quantity > 0 {
		productionRecorded.Add(quantity)
	}
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}
