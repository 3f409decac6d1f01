package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring a seeding run.
// It includes counters for runs, submit attempts, retries and submitted records,
// a gauge for the last successful run, and histograms for run, request and query duration.
type Metrics struct {
	Runs              *prometheus.CounterVec
	SubmitAttempts    *prometheus.CounterVec
	SubmitRetries     *prometheus.CounterVec
	RecordsSubmitted  *prometheus.CounterVec
	LastSuccessfulRun prometheus.Gauge
	RunDuration       prometheus.Histogram
	RequestDuration   *prometheus.HistogramVec
	DBQueryDuration   *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Runs: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "seeder_runs_total",
			Help: "Total times the seeder has successfully or unsuccessfully completed a run.",
		}, []string{"status"}),
		SubmitAttempts: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "seeder_submit_attempts_total",
			Help: "Total number of POST attempts, by endpoint path and outcome.",
		}, []string{"endpoint", "outcome"}),
		SubmitRetries: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "seeder_submit_retries_total",
			Help: "Total number of times a failed POST was scheduled for another attempt.",
		}, []string{"endpoint"}),
		RecordsSubmitted: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "seeder_records_submitted_total",
			Help: "Total number of records submitted, by record type and status.",
		}, []string{"type", "status"}), // type: 'employee', 'attendance', 'production'
		LastSuccessfulRun: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "seeder_last_successful_run_timestamp",
			Help: "Last time when run was successfully",
		}),
		RunDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "seeder_run_duration_seconds",
			Help:    "Measures how long it takes for a full seeding run to complete",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seeder_request_duration_seconds",
			Help:    "Duration of single HTTP attempts against the seeded API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seeder_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'save_run', 'get_last_run'
	}

	metrics.Runs.WithLabelValues("success")
	metrics.Runs.WithLabelValues("failure")

	return metrics
}
