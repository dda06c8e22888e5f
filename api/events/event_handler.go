package events

import (
	"context"
	"time"

	"github.com/equinor/radix-common/utils/slice"
	eventModels "github.com/gaborgsomogyi/flink-kubernetes-operator/api/events/models"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/kubequery"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/metrics"
	"github.com/rs/zerolog/log"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/kubernetes"
)

//go:generate mockgen -source=./event_handler.go -destination=./mock/event_handler_mock.go -package=mock

// EventHandler Interface for querying events of an involved object
type EventHandler interface {
	// GetObjectEvents returns the events where the involved object is ref. No ordering is guaranteed.
	GetObjectEvents(ctx context.Context, ref corev1.ObjectReference) ([]*eventModels.Event, error)
}

type eventHandler struct {
	kubeClient kubernetes.Interface
}

// Init creates a new EventHandler
func Init(kubeClient kubernetes.Interface) EventHandler {
	return &eventHandler{kubeClient: kubeClient}
}

func (eh *eventHandler) GetObjectEvents(ctx context.Context, ref corev1.ObjectReference) ([]*eventModels.Event, error) {
	start := time.Now()
	k8sEvents, err := kubequery.GetEventsForObject(ctx, eh.kubeClient, ref)
	metrics.AddEventQueryDuration(ref.Kind, time.Since(start))
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Trace().
		Str("kind", ref.Kind).
		Str("namespace", ref.Namespace).
		Str("name", ref.Name).
		Int("count", len(k8sEvents)).
		Msg("Listed events for object")

	return slice.Map(k8sEvents, func(ev corev1.Event) *eventModels.Event {
		return eventModels.NewEventBuilder().WithKubernetesEvent(ev).Build()
	}), nil
}
