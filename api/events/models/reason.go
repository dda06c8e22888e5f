package models

// Reason is the short machine readable code stored in the reason field of an event
type Reason string

const (
	// ReasonFailedMount is emitted by the kubelet when a volume for a pod cannot be mounted
	ReasonFailedMount Reason = "FailedMount"
	// ReasonJobException is emitted by the operator for every exception reported by a running job
	ReasonJobException Reason = "JobException"
)

// Component is the source component of an event
type Component string

const (
	ComponentJobManagerDeployment Component = "JobManagerDeployment"
	ComponentJob                  Component = "Job"
	ComponentSnapshot             Component = "Snapshot"
	ComponentOperator             Component = "Operator"
)

// ExceptionTimestampAnnotation holds the time the job exception occurred, in RFC3339 format.
// It is set on JobException events by the event producer.
const ExceptionTimestampAnnotation = "exception-timestamp"

// IsReason returns true if the event reason equals r
func (e *Event) IsReason(r Reason) bool {
	return e.Reason == string(r)
}

// IsFromComponent returns true if the event source component equals c
func (e *Event) IsFromComponent(c Component) bool {
	return e.SourceComponent == string(c)
}
