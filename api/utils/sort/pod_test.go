package sort

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func pod(namespace, name string, created time.Time) corev1.Pod {
	return corev1.Pod{ObjectMeta: v1.ObjectMeta{Namespace: namespace, Name: name, CreationTimestamp: v1.NewTime(created)}}
}

func Test_ByPodCreationTimestamp(t *testing.T) {
	newTime := time.Now()
	oldTime := newTime.Add(-1 * time.Second)

	oldPod, newPod := pod("flink", "a", oldTime), pod("flink", "b", newTime)

	assert.Negative(t, ByPodCreationTimestamp(oldPod, newPod))
	assert.Positive(t, ByPodCreationTimestamp(newPod, oldPod))
	assert.Zero(t, ByPodCreationTimestamp(oldPod, oldPod))
}

func Test_ByPodNamespacedName(t *testing.T) {
	assert.Negative(t, ByPodNamespacedName(pod("a", "z", time.Time{}), pod("b", "a", time.Time{})))
	assert.Positive(t, ByPodNamespacedName(pod("a", "b", time.Time{}), pod("a", "a", time.Time{})))
	assert.Zero(t, ByPodNamespacedName(pod("a", "a", time.Time{}), pod("a", "a", time.Time{})))
}

func Test_Pods(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	podA, podB, podC := pod("flink", "a", created), pod("flink", "b", created), pod("flink", "c", created.Add(-time.Minute))

	pods := []corev1.Pod{podB, podA, podC}
	Pods(pods, Ascending, ByPodCreationTimestamp, ByPodNamespacedName)
	assert.Equal(t, []corev1.Pod{podC, podA, podB}, pods)

	pods = []corev1.Pod{podB, podA, podC}
	Pods(pods, Descending, ByPodCreationTimestamp, ByPodNamespacedName)
	assert.Equal(t, []corev1.Pod{podB, podA, podC}, pods)

	pods = []corev1.Pod{podB, podC, podA}
	Pods(pods, Ascending)
	assert.Equal(t, []corev1.Pod{podB, podC, podA}, pods, "no compare functions keeps the order")
}
