package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	volumeMountFailuresMetric      = "flink_operator_volume_mount_failures_total"
	observationErrorsMetric        = "flink_operator_observation_errors_total"
	lastJobExceptionMetric         = "flink_operator_last_job_exception_timestamp_seconds"
	eventQueryDurationMetric       = "flink_operator_event_query_duration_seconds"
	eventQueryDurationBucketMetric = "flink_operator_event_query_duration_seconds_hist"
	observationPassDurationMetric  = "flink_operator_observation_pass_duration_seconds"

	namespaceLabel = "namespace"
	nameLabel      = "name"
	kindLabel      = "kind"
	reasonLabel    = "reason"
	operationLabel = "operation"
)

var (
	nrVolumeMountFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: volumeMountFailuresMetric,
			Help: "The total number of startup fatal volume mount failures detected",
		}, []string{namespaceLabel, reasonLabel})
	nrObservationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: observationErrorsMetric,
			Help: "The total number of observations failing with a transient error",
		}, []string{namespaceLabel, operationLabel})
	lastJobException = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: lastJobExceptionMetric,
			Help: "Unix time of the most recent job exception reported for an object",
		}, []string{namespaceLabel, nameLabel})
	queryTime = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       eventQueryDurationMetric,
			Help:       "Event query duration seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{kindLabel},
	)
	queryTimeBucket = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    eventQueryDurationBucketMetric,
			Help:    "Event query duration seconds bucket",
			Buckets: DefaultBuckets(),
		},
		[]string{kindLabel},
	)
	passTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    observationPassDurationMetric,
			Help:    "Duration of a complete observation pass",
			Buckets: DefaultBuckets(),
		},
	)
)

func init() {
	prometheus.MustRegister(queryTime)
	prometheus.MustRegister(queryTimeBucket)
	prometheus.MustRegister(passTime)
}

func DefaultBuckets() []float64 {
	return []float64{0.03, 0.1, 0.3, 1, 2, 3, 5, 10}
}

// AddVolumeMountFailure New startup fatal volume mount failure detected in namespace
func AddVolumeMountFailure(namespace, reason string) {
	nrVolumeMountFailures.With(prometheus.Labels{namespaceLabel: namespace, reasonLabel: reason}).Inc()
}

// AddObservationError New transient error for an observation operation in namespace
func AddObservationError(namespace, operation string) {
	nrObservationErrors.With(prometheus.Labels{namespaceLabel: namespace, operationLabel: operation}).Inc()
}

// SetLastJobException Set the most recent job exception time for an object
func SetLastJobException(namespace, name string, ts time.Time) {
	lastJobException.With(prometheus.Labels{namespaceLabel: namespace, nameLabel: name}).Set(float64(ts.UnixMilli()) / 1000)
}

// AddEventQueryDuration Add event query duration for the involved object kind
func AddEventQueryDuration(kind string, duration time.Duration) {
	queryTime.WithLabelValues(kind).Observe(duration.Seconds())
	queryTimeBucket.WithLabelValues(kind).Observe(duration.Seconds())
}

// AddObservationPassDuration Add duration of a complete observation pass
func AddObservationPassDuration(duration time.Duration) {
	passTime.Observe(duration.Seconds())
}
