package pods

import (
	corev1 "k8s.io/api/core/v1"
)

// PodReadyToStartContainers is set by the kubelet once the pod sandbox is created and networking is configured.
// Clusters before Kubernetes 1.29 do not report it.
const PodReadyToStartContainers corev1.PodConditionType = "PodReadyToStartContainers"

// IsStillStarting returns true while the pod has not passed the startup gate where containers can be started.
// A pod without conditions is not considered starting.
//
// PodReadyToStartContainers decides when present. Otherwise the Initialized condition is used.
// In both cases only the status False means the pod is still starting.
func IsStillStarting(conditions []corev1.PodCondition) bool {
	if len(conditions) == 0 {
		return false
	}

	statusByType := make(map[corev1.PodConditionType]corev1.ConditionStatus, len(conditions))
	for _, condition := range conditions {
		statusByType[condition.Type] = condition.Status
	}

	if status, ok := statusByType[PodReadyToStartContainers]; ok {
		return status == corev1.ConditionFalse
	}
	return statusByType[corev1.PodInitialized] == corev1.ConditionFalse
}
