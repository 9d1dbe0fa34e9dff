package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for blueprint store operations.
type Metrics struct {
	OperationDuration *prometheus.HistogramVec
	BlueprintsCreated prometheus.Counter
	PointsStored      prometheus.Counter
}

// New creates a Metrics instance and registers it with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blueprints_store_operation_duration_seconds",
			Help:    "Duration of blueprint store operations by operation and outcome",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation", "outcome"}),
		BlueprintsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "blueprints_created_total",
			Help: "Total number of blueprints created",
		}),
		PointsStored: factory.NewCounter(prometheus.CounterOpts{
			Name: "blueprints_points_stored_total",
			Help: "Total number of points stored, at creation or by append",
		}),
	}
}

// ObserveOperation records the duration of a store operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation, outcome string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}

// IncrementBlueprintsCreated records a successful blueprint creation.
func (m *Metrics) IncrementBlueprintsCreated() {
	m.BlueprintsCreated.Inc()
}

// AddPointsStored records n newly stored points.
func (m *Metrics) AddPointsStored(n int) {
	m.PointsStored.Add(float64(n))
}
