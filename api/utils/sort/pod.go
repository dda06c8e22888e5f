package sort

import (
	"slices"
	"strings"

	corev1 "k8s.io/api/core/v1"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// PodCompareFunc returns a negative number when pod sorts before compareWith, a positive number when after and zero when equal.
type PodCompareFunc func(pod corev1.Pod, compareWith corev1.Pod) int

// ByPodCreationTimestamp compares CreationTimestamp of pod and compareWith.
func ByPodCreationTimestamp(pod corev1.Pod, compareWith corev1.Pod) int {
	return pod.CreationTimestamp.Time.Compare(compareWith.CreationTimestamp.Time)
}

// ByPodNamespacedName compares namespace and then name of pod and compareWith.
func ByPodNamespacedName(pod corev1.Pod, compareWith corev1.Pod) int {
	if c := strings.Compare(pod.Namespace, compareWith.Namespace); c != 0 {
		return c
	}
	return strings.Compare(pod.Name, compareWith.Name)
}

// Pods sorts the slice of pods with the compare functions in order, the next function breaks ties of the previous one.
func Pods(pods []corev1.Pod, direction Direction, compareFuncs ...PodCompareFunc) {
	slices.SortStableFunc(pods, func(a, b corev1.Pod) int {
		for _, compare := range compareFuncs {
			if c := compare(a, b); c != 0 {
				if direction == Descending {
					return -c
				}
				return c
			}
		}
		return 0
	})
}
