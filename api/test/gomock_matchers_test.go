package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
)

func Test_EqualsObjectIdentity(t *testing.T) {
	matcher := EqualsObjectIdentity("Pod", "flink", "pod1")

	assert.True(t, matcher.Matches(corev1.ObjectReference{Kind: "Pod", Namespace: "flink", Name: "pod1", UID: "uid1", APIVersion: "v1"}))
	assert.False(t, matcher.Matches(corev1.ObjectReference{Kind: "Pod", Namespace: "flink", Name: "pod2"}))
	assert.False(t, matcher.Matches(corev1.ObjectReference{Kind: "Deployment", Namespace: "flink", Name: "pod1"}))
	assert.False(t, matcher.Matches(&corev1.ObjectReference{Kind: "Pod", Namespace: "flink", Name: "pod1"}))
	assert.Equal(t, "is reference to Pod flink/pod1", matcher.String())
}
