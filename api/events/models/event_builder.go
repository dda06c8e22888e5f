package models

import (
	"maps"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// EventBuilder Build Event DTOs
type EventBuilder interface {
	WithKubernetesEvent(corev1.Event) EventBuilder
	WithName(string) EventBuilder
	WithFirstTimestamp(time.Time) EventBuilder
	WithLastTimestamp(time.Time) EventBuilder
	WithCount(int32) EventBuilder
	WithInvolvedObject(corev1.ObjectReference) EventBuilder
	WithType(string) EventBuilder
	WithReason(string) EventBuilder
	WithMessage(string) EventBuilder
	WithSourceComponent(string) EventBuilder
	WithAnnotations(map[string]string) EventBuilder
	Build() *Event
}

type eventBuilder struct {
	name            string
	firstTimestamp  time.Time
	lastTimestamp   time.Time
	count           int32
	involvedObject  corev1.ObjectReference
	eventType       string
	reason          string
	message         string
	sourceComponent string
	annotations     map[string]string
}

// NewEventBuilder Constructor for eventBuilder
func NewEventBuilder() EventBuilder {
	return &eventBuilder{}
}

func (eb *eventBuilder) WithKubernetesEvent(v corev1.Event) EventBuilder {
	eb.WithName(v.Name)
	if !v.FirstTimestamp.IsZero() {
		eb.WithFirstTimestamp(v.FirstTimestamp.Time)
	} else {
		eb.WithFirstTimestamp(v.EventTime.Time)
	}
	if !v.LastTimestamp.IsZero() {
		eb.WithLastTimestamp(v.LastTimestamp.Time)
	} else {
		eb.WithLastTimestamp(v.EventTime.Time)
	}
	eb.WithCount(v.Count)
	eb.WithInvolvedObject(v.InvolvedObject)
	eb.WithType(v.Type)
	eb.WithReason(v.Reason)
	eb.WithMessage(v.Message)
	eb.WithSourceComponent(v.Source.Component)
	eb.WithAnnotations(v.Annotations)
	return eb
}

func (eb *eventBuilder) WithName(v string) EventBuilder {
	eb.name = v
	return eb
}

func (eb *eventBuilder) WithFirstTimestamp(v time.Time) EventBuilder {
	eb.firstTimestamp = v
	return eb
}

func (eb *eventBuilder) WithLastTimestamp(v time.Time) EventBuilder {
	eb.lastTimestamp = v
	return eb
}

func (eb *eventBuilder) WithCount(v int32) EventBuilder {
	eb.count = v
	return eb
}

func (eb *eventBuilder) WithInvolvedObject(v corev1.ObjectReference) EventBuilder {
	eb.involvedObject = v
	return eb
}

func (eb *eventBuilder) WithType(v string) EventBuilder {
	eb.eventType = v
	return eb
}

func (eb *eventBuilder) WithReason(v string) EventBuilder {
	eb.reason = v
	return eb
}

func (eb *eventBuilder) WithMessage(v string) EventBuilder {
	eb.message = v
	return eb
}

func (eb *eventBuilder) WithSourceComponent(v string) EventBuilder {
	eb.sourceComponent = v
	return eb
}

func (eb *eventBuilder) WithAnnotations(v map[string]string) EventBuilder {
	eb.annotations = maps.Clone(v)
	return eb
}

func (eb *eventBuilder) Build() *Event {
	return &Event{
		Name:                    eb.name,
		FirstTimestamp:          eb.firstTimestamp,
		LastTimestamp:           eb.lastTimestamp,
		Count:                   eb.count,
		InvolvedObjectKind:      eb.involvedObject.Kind,
		InvolvedObjectNamespace: eb.involvedObject.Namespace,
		InvolvedObjectName:      eb.involvedObject.Name,
		InvolvedObjectUID:       string(eb.involvedObject.UID),
		Type:                    eb.eventType,
		Reason:                  eb.reason,
		Message:                 eb.message,
		SourceComponent:         eb.sourceComponent,
		Annotations:             eb.annotations,
	}
}
