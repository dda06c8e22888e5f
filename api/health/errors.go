package health

import "errors"

// DeploymentFailedError is returned when a deployment cannot succeed without external intervention, e.g. a volume that cannot be mounted.
// Reason and Message are copied unchanged from the event reporting the failure.
// It is not a transient error and retrying the observation will not resolve it.
type DeploymentFailedError struct {
	Reason  string
	Message string
}

func (e *DeploymentFailedError) Error() string {
	return e.Message
}

// IsDeploymentFailed returns true if err, or any error it wraps, is a DeploymentFailedError
func IsDeploymentFailed(err error) bool {
	var dfe *DeploymentFailedError
	return errors.As(err, &dfe)
}

// AsDeploymentFailed returns the DeploymentFailedError in the chain of err, or nil when there is none
func AsDeploymentFailed(err error) *DeploymentFailedError {
	var dfe *DeploymentFailedError
	if errors.As(err, &dfe) {
		return dfe
	}
	return nil
}
