package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/utils/event"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

type keyLock struct {
	sem  chan struct{}
	refs int
}

type serializedHandler struct {
	handler HealthHandler
	scheme  *runtime.Scheme
	mu      sync.Mutex
	locks   map[string]*keyLock
}

// NewSerializedHandler wraps handler so that calls for the same object never run concurrently.
// Calls for different objects are not blocked by each other.
func NewSerializedHandler(handler HealthHandler) HealthHandler {
	s := &serializedHandler{
		handler: handler,
		locks:   make(map[string]*keyLock),
	}
	if h, ok := handler.(*healthHandler); ok {
		s.scheme = h.scheme
	}
	return s
}

func (s *serializedHandler) CheckForVolumeMountErrors(ctx context.Context, pod *corev1.Pod) error {
	if pod == nil {
		return s.handler.CheckForVolumeMountErrors(ctx, pod)
	}
	unlock, err := s.lock(ctx, objectKey("Pod", pod.Namespace, pod.Name))
	if err != nil {
		return err
	}
	defer unlock()
	return s.handler.CheckForVolumeMountErrors(ctx, pod)
}

func (s *serializedHandler) CheckPodForVolumeMountErrors(ctx context.Context, namespace, name string) error {
	unlock, err := s.lock(ctx, objectKey("Pod", namespace, name))
	if err != nil {
		return err
	}
	defer unlock()
	return s.handler.CheckPodForVolumeMountErrors(ctx, namespace, name)
}

func (s *serializedHandler) FindLastJobExceptionTimestamp(ctx context.Context, obj runtime.Object) (*time.Time, error) {
	var ref corev1.ObjectReference
	var err error
	if s.scheme != nil {
		ref, err = event.ObjectReferenceWithScheme(s.scheme, obj)
	} else {
		ref, err = event.ObjectReference(obj)
	}
	if err != nil {
		return nil, err
	}
	unlock, err := s.lock(ctx, objectKey(ref.Kind, ref.Namespace, ref.Name))
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.handler.FindLastJobExceptionTimestamp(ctx, obj)
}

// lock waits until the lock for key is acquired or ctx is done. The returned function releases the lock.
func (s *serializedHandler) lock(ctx context.Context, key string) (func(), error) {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{sem: make(chan struct{}, 1)}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	select {
	case l.sem <- struct{}{}:
		return func() {
			<-l.sem
			s.release(key, l)
		}, nil
	case <-ctx.Done():
		s.release(key, l)
		return nil, ctx.Err()
	}
}

func (s *serializedHandler) release(key string, l *keyLock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, key)
	}
}

func objectKey(kind, namespace, name string) string {
	return fmt.Sprintf("%s/%s/%s", kind, namespace, name)
}
