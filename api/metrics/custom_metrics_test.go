package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func Test_AddVolumeMountFailure(t *testing.T) {
	counter := nrVolumeMountFailures.WithLabelValues("metrics-test", "FailedMount")
	before := testutil.ToFloat64(counter)

	AddVolumeMountFailure("metrics-test", "FailedMount")
	AddVolumeMountFailure("metrics-test", "FailedMount")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func Test_AddObservationError(t *testing.T) {
	counter := nrObservationErrors.WithLabelValues("metrics-test", "volume-mount")
	before := testutil.ToFloat64(counter)

	AddObservationError("metrics-test", "volume-mount")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func Test_SetLastJobException(t *testing.T) {
	ts := time.Date(2024, 3, 4, 5, 6, 7, 500_000_000, time.UTC)

	SetLastJobException("metrics-test", "basic", ts)

	assert.Equal(t, float64(ts.UnixMilli())/1000, testutil.ToFloat64(lastJobException.WithLabelValues("metrics-test", "basic")))
}

func Test_AddEventQueryDuration(t *testing.T) {
	AddEventQueryDuration("MetricsTestKind", 250*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(queryTimeBucket, eventQueryDurationBucketMetric))
}
