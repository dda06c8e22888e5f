package health

import (
	"context"
	"time"

	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/events"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/scheme"
)

//go:generate mockgen -source=./health_handler.go -destination=./mock/health_handler_mock.go -package=mock

// HealthHandler Interface for the health signals of managed objects.
// Every call reads the current cluster state, nothing is cached between calls.
type HealthHandler interface {
	// CheckForVolumeMountErrors returns a DeploymentFailedError when pod is still starting and a FailedMount event exists for it
	CheckForVolumeMountErrors(ctx context.Context, pod *corev1.Pod) error
	// CheckPodForVolumeMountErrors reads the pod and runs CheckForVolumeMountErrors on it
	CheckPodForVolumeMountErrors(ctx context.Context, namespace, name string) error
	// FindLastJobExceptionTimestamp returns the time of the most recent job exception reported for obj, or nil if none is reported
	FindLastJobExceptionTimestamp(ctx context.Context, obj runtime.Object) (*time.Time, error)
}

// HandlerOptions options for the health handler
type HandlerOptions func(*healthHandler)

// WithScheme sets the scheme used to resolve the kind of objects without type metadata.
// Defaults to the client-go scheme.
func WithScheme(s *runtime.Scheme) HandlerOptions {
	return func(h *healthHandler) {
		h.scheme = s
	}
}

type healthHandler struct {
	kubeClient   kubernetes.Interface
	eventHandler events.EventHandler
	scheme       *runtime.Scheme
}

// Init creates a new HealthHandler
func Init(kubeClient kubernetes.Interface, eventHandler events.EventHandler, opts ...HandlerOptions) HealthHandler {
	h := &healthHandler{
		kubeClient:   kubeClient,
		eventHandler: eventHandler,
		scheme:       scheme.Scheme,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
