package health

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/equinor/radix-common/utils/slice"
	eventModels "github.com/gaborgsomogyi/flink-kubernetes-operator/api/events/models"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/kubequery"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/pods"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/utils/event"
	"github.com/rs/zerolog/log"
	corev1 "k8s.io/api/core/v1"
	kubeerrors "k8s.io/apimachinery/pkg/api/errors"
)

func (h *healthHandler) CheckForVolumeMountErrors(ctx context.Context, pod *corev1.Pod) error {
	// Events are only relevant while the pod is starting, later they are history
	if pod == nil || !pods.IsStillStarting(pod.Status.Conditions) {
		return nil
	}

	ref, err := event.ObjectReferenceWithScheme(h.scheme, pod)
	if err != nil {
		return err
	}
	podEvents, err := h.eventHandler.GetObjectEvents(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to get events for pod %s/%s: %w", pod.Namespace, pod.Name, err)
	}

	failedMounts := slice.FindAll(podEvents, func(ev *eventModels.Event) bool { return ev.IsReason(eventModels.ReasonFailedMount) })
	if len(failedMounts) == 0 {
		return nil
	}
	slices.SortStableFunc(failedMounts, compareFirstSeen)
	failedMount := failedMounts[0]

	log.Ctx(ctx).Debug().
		Str("namespace", pod.Namespace).
		Str("pod", pod.Name).
		Str("event", failedMount.Name).
		Int("failedMountEvents", len(failedMounts)).
		Msg("Pod cannot mount a volume during startup")
	return &DeploymentFailedError{Reason: failedMount.Reason, Message: failedMount.Message}
}

func (h *healthHandler) CheckPodForVolumeMountErrors(ctx context.Context, namespace, name string) error {
	pod, err := kubequery.GetPod(ctx, h.kubeClient, namespace, name)
	if err != nil {
		if kubeerrors.IsNotFound(err) {
			return pods.PodNotFoundError(namespace, name)
		}
		return fmt.Errorf("failed to get pod %s/%s: %w", namespace, name, err)
	}
	return h.CheckForVolumeMountErrors(ctx, pod)
}

// compareFirstSeen orders events by first timestamp, then last timestamp, then name. Events without first timestamp are ordered last.
func compareFirstSeen(a, b *eventModels.Event) int {
	if a.FirstTimestamp.IsZero() != b.FirstTimestamp.IsZero() {
		if a.FirstTimestamp.IsZero() {
			return 1
		}
		return -1
	}
	if c := a.FirstTimestamp.Compare(b.FirstTimestamp); c != 0 {
		return c
	}
	if c := a.LastTimestamp.Compare(b.LastTimestamp); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
