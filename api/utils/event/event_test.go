package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/fields"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
)

func Test_ObjectReference_ResolvesKindFromScheme(t *testing.T) {
	pod := &corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "pod1", Namespace: "ns1", UID: "uid1", ResourceVersion: "42"}}

	ref, err := ObjectReference(pod)
	require.NoError(t, err)
	assert.Equal(t, corev1.ObjectReference{Kind: "Pod", APIVersion: "v1", Name: "pod1", Namespace: "ns1", UID: "uid1"}, ref)
}

func Test_ObjectReference_UsesTypeMeta(t *testing.T) {
	deployment := &appsv1.Deployment{
		TypeMeta:   metav1.TypeMeta{Kind: "Deployment", APIVersion: "apps/v1"},
		ObjectMeta: metav1.ObjectMeta{Name: "jm", Namespace: "ns1"},
	}

	ref, err := ObjectReference(deployment)
	require.NoError(t, err)
	assert.Equal(t, "Deployment", ref.Kind)
	assert.Equal(t, "apps/v1", ref.APIVersion)
	assert.Equal(t, "jm", ref.Name)
	assert.Empty(t, ref.UID)
}

func Test_ObjectReference_CustomResource(t *testing.T) {
	obj := &unstructured.Unstructured{}
	obj.SetAPIVersion("flink.apache.org/v1beta1")
	obj.SetKind("FlinkDeployment")
	obj.SetName("basic")
	obj.SetNamespace("flink")
	obj.SetUID("uid2")

	ref, err := ObjectReferenceWithScheme(runtime.NewScheme(), obj)
	require.NoError(t, err)
	assert.Equal(t, corev1.ObjectReference{Kind: "FlinkDeployment", APIVersion: "flink.apache.org/v1beta1", Name: "basic", Namespace: "flink", UID: "uid2"}, ref)
}

func Test_ObjectReference_Nil(t *testing.T) {
	_, err := ObjectReference(nil)
	assert.Error(t, err)
}

func Test_InvolvedObjectFieldSelector(t *testing.T) {
	matching := fields.Set{
		"involvedObject.kind":      "Pod",
		"involvedObject.name":      "pod1",
		"involvedObject.namespace": "ns1",
		"involvedObject.uid":       "uid1",
	}

	t.Run("without uid", func(t *testing.T) {
		selector := InvolvedObjectFieldSelector(corev1.ObjectReference{Kind: "Pod", Name: "pod1", Namespace: "ns1"})
		assert.True(t, selector.Matches(matching))
		assert.False(t, selector.Matches(fields.Set{"involvedObject.kind": "Pod", "involvedObject.name": "pod2", "involvedObject.namespace": "ns1"}))
		_, found := selector.RequiresExactMatch("involvedObject.uid")
		assert.False(t, found)
	})

	t.Run("with uid", func(t *testing.T) {
		selector := InvolvedObjectFieldSelector(corev1.ObjectReference{Kind: "Pod", Name: "pod1", Namespace: "ns1", UID: "uid1"})
		assert.True(t, selector.Matches(matching))
		uid, found := selector.RequiresExactMatch("involvedObject.uid")
		assert.True(t, found)
		assert.Equal(t, "uid1", uid)
		kind, found := selector.RequiresExactMatch("involvedObject.kind")
		assert.True(t, found)
		assert.Equal(t, "Pod", kind)
	})
}

func Test_IsEventForObject(t *testing.T) {
	ref := corev1.ObjectReference{Kind: "Pod", Name: "pod1", Namespace: "ns1", UID: types.UID("uid1")}
	event := func(kind, name, namespace, uid string) corev1.Event {
		return corev1.Event{InvolvedObject: corev1.ObjectReference{Kind: kind, Name: name, Namespace: namespace, UID: types.UID(uid)}}
	}

	predicate := IsEventForObject(ref)
	assert.True(t, predicate(event("Pod", "pod1", "ns1", "uid1")))
	assert.False(t, predicate(event("Pod", "pod1", "ns1", "uid2")))
	assert.False(t, predicate(event("Pod", "pod1", "ns1", "")))
	assert.False(t, predicate(event("Deployment", "pod1", "ns1", "uid1")))
	assert.False(t, predicate(event("Pod", "pod2", "ns1", "uid1")))
	assert.False(t, predicate(event("Pod", "pod1", "ns2", "uid1")))

	ref.UID = ""
	predicate = IsEventForObject(ref)
	assert.True(t, predicate(event("Pod", "pod1", "ns1", "")))
	assert.True(t, predicate(event("Pod", "pod1", "ns1", "any-uid")))
}
