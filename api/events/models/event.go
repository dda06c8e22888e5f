package models

import "time"

// Event holds information about a Kubernetes event
type Event struct {

	// Name of the event object
	//
	// example: www-74cb7c986-fgcrl.1740ac3a0b4d5b24
	Name string `json:"name"`

	// The time at which the event was first recorded
	//
	// example: 2020-11-05T13:25:07.000Z
	FirstTimestamp time.Time `json:"firstTimestamp"`

	// The time at which the event was last recorded
	//
	// example: 2020-11-05T13:25:07.000Z
	LastTimestamp time.Time `json:"lastTimestamp"`

	// The number of times this event has occurred
	//
	// example: 2
	Count int32 `json:"count"`

	// Kind of object involved in this event
	//
	// example: Pod
	InvolvedObjectKind string `json:"involvedObjectKind"`

	// Namespace of object involved in this event
	//
	// example: flink-jobs
	InvolvedObjectNamespace string `json:"involvedObjectNamespace"`

	// Name of object involved in this event
	//
	// example: www-74cb7c986-fgcrl
	InvolvedObjectName string `json:"involvedObjectName"`

	// UID of object involved in this event
	//
	// example: d1bf3ab3-0693-4291-a559-96a12ace9f33
	InvolvedObjectUID string `json:"involvedObjectUid,omitempty"`

	// Type of this event (Normal, Warning)
	//
	// example: Warning
	Type string `json:"type"`

	// A short, machine understandable string that gives the reason for this event
	//
	// example: FailedMount
	Reason string `json:"reason"`

	// A human-readable description of the status of this event
	//
	// example: MountVolume.SetUp failed for volume "config" : configmap "flink-config" not found
	Message string `json:"message"`

	// The component reporting this event
	//
	// example: Job
	SourceComponent string `json:"sourceComponent"`

	// Annotations of the event object
	Annotations map[string]string `json:"annotations,omitempty"`
}
