package kubequery

import (
	"context"

	"github.com/equinor/radix-common/utils/slice"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/utils/event"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// GetEventsForObject returns all Events in the namespace of ref where the involved object is ref.
// The list is filtered by the API server with a field selector, and again on the client since not every client honours field selectors.
// No ordering is guaranteed.
func GetEventsForObject(ctx context.Context, client kubernetes.Interface, ref corev1.ObjectReference) ([]corev1.Event, error) {
	eventList, err := client.CoreV1().Events(ref.Namespace).List(ctx, metav1.ListOptions{FieldSelector: event.InvolvedObjectFieldSelector(ref).String()})
	if err != nil {
		return nil, err
	}
	return slice.FindAll(eventList.Items, event.IsEventForObject(ref)), nil
}
