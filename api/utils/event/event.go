package event

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/fields"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/reference"
)

const (
	involvedObjectKindField      = "involvedObject.kind"
	involvedObjectNameField      = "involvedObject.name"
	involvedObjectNamespaceField = "involvedObject.namespace"
	involvedObjectUIDField       = "involvedObject.uid"
)

// ObjectReference builds the involved object reference used to correlate events with obj.
// Kind and apiVersion are read from the type metadata of obj, or from the client-go scheme when the type metadata is empty.
func ObjectReference(obj runtime.Object) (corev1.ObjectReference, error) {
	return ObjectReferenceWithScheme(scheme.Scheme, obj)
}

// ObjectReferenceWithScheme builds the involved object reference for obj, resolving missing type metadata from s.
// Resource version and field path are not part of the identity and are left empty.
func ObjectReferenceWithScheme(s *runtime.Scheme, obj runtime.Object) (corev1.ObjectReference, error) {
	if obj == nil {
		return corev1.ObjectReference{}, fmt.Errorf("cannot build object reference for nil object")
	}
	ref, err := reference.GetReference(s, obj)
	if err != nil {
		return corev1.ObjectReference{}, fmt.Errorf("failed to build object reference: %w", err)
	}
	return corev1.ObjectReference{
		Kind:       ref.Kind,
		APIVersion: ref.APIVersion,
		Name:       ref.Name,
		Namespace:  ref.Namespace,
		UID:        ref.UID,
	}, nil
}

// InvolvedObjectFieldSelector returns a field selector matching events for ref. The uid is only part of the selector when set.
func InvolvedObjectFieldSelector(ref corev1.ObjectReference) fields.Selector {
	set := fields.Set{
		involvedObjectKindField:      ref.Kind,
		involvedObjectNameField:      ref.Name,
		involvedObjectNamespaceField: ref.Namespace,
	}
	if len(ref.UID) > 0 {
		set[involvedObjectUIDField] = string(ref.UID)
	}
	return set.AsSelector()
}

// IsEventForObject returns a predicate matching events whose involved object is ref
func IsEventForObject(ref corev1.ObjectReference) func(corev1.Event) bool {
	return func(ev corev1.Event) bool {
		obj := ev.InvolvedObject
		if obj.Kind != ref.Kind || obj.Name != ref.Name || obj.Namespace != ref.Namespace {
			return false
		}
		return len(ref.UID) == 0 || obj.UID == ref.UID
	}
}
