package health

import (
	"context"
	"fmt"
	"time"

	"github.com/equinor/radix-common/utils/pointers"
	eventModels "github.com/gaborgsomogyi/flink-kubernetes-operator/api/events/models"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/utils/event"
	"github.com/rs/zerolog/log"
	"k8s.io/apimachinery/pkg/runtime"
)

func (h *healthHandler) FindLastJobExceptionTimestamp(ctx context.Context, obj runtime.Object) (*time.Time, error) {
	ref, err := event.ObjectReferenceWithScheme(h.scheme, obj)
	if err != nil {
		return nil, err
	}
	objEvents, err := h.eventHandler.GetObjectEvents(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get events for %s %s/%s: %w", ref.Kind, ref.Namespace, ref.Name, err)
	}

	logger := log.Ctx(ctx)
	var last *time.Time
	for _, ev := range objEvents {
		if !isJobExceptionEvent(ev) {
			continue
		}
		// The event timestamps tell when the event was recorded, the annotation when the exception happened
		ts, err := parseExceptionTimestamp(ev)
		if err != nil {
			logger.Warn().Err(err).Str("event", ev.Name).Str("namespace", ref.Namespace).Msg("Ignoring job exception event")
			continue
		}
		if last == nil || ts.After(*last) {
			last = pointers.Ptr(ts)
		}
	}
	return last, nil
}

func isJobExceptionEvent(ev *eventModels.Event) bool {
	return ev.IsReason(eventModels.ReasonJobException) && ev.IsFromComponent(eventModels.ComponentJob)
}

func parseExceptionTimestamp(ev *eventModels.Event) (time.Time, error) {
	value, ok := ev.Annotations[eventModels.ExceptionTimestampAnnotation]
	if !ok {
		return time.Time{}, fmt.Errorf("annotation %s is missing", eventModels.ExceptionTimestampAnnotation)
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("annotation %s is not a valid timestamp: %w", eventModels.ExceptionTimestampAnnotation, err)
	}
	return ts, nil
}
