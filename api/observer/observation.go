package observer

import (
	"time"

	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/health"
)

const (
	operationVolumeMount  = "volume-mount"
	operationJobException = "job-exception"
)

// Observation health signals of one pod from a single observation pass
type Observation struct {
	Namespace string
	Name      string
	// Failure is set when the pod can never start, e.g. a volume cannot be mounted
	Failure *health.DeploymentFailedError
	// LastJobException time of the most recent job exception, nil when none is reported
	LastJobException *time.Time
	// Errors transient errors hit while observing the pod
	Errors []error
}

// Failed returns true when a startup fatal failure was detected for the pod
func (o Observation) Failed() bool {
	return o.Failure != nil
}

// Healthy returns true when the pod was fully observed and no failure was detected
func (o Observation) Healthy() bool {
	return !o.Failed() && len(o.Errors) == 0
}
