package observer

import (
	"context"
	"fmt"
	"time"

	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/health"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/kubequery"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/metrics"
	sortUtils "github.com/gaborgsomogyi/flink-kubernetes-operator/api/utils/sort"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/utils/warningcollector"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/kubernetes"
)

const defaultParallelism = 5

// Observer Runs observation passes over the watched pods
type Observer interface {
	// Observe runs one observation pass and returns the observations ordered by pod creation time. Transient errors for a single pod are reported in its Observation,
	// an error is only returned when the pods cannot be listed.
	Observe(ctx context.Context) ([]Observation, error)
	// Run calls Observe every interval until ctx is done
	Run(ctx context.Context, interval time.Duration)
}

// Options for the Observer
type Options struct {
	// Namespace to watch, empty watches all namespaces
	Namespace string
	// LabelSelector selects the pods to observe
	LabelSelector string
	// Parallelism maximum number of pods observed concurrently
	Parallelism int
	// WarningHandler collects the API server warnings of a pass when set. It must be the handler installed in the client config.
	WarningHandler *warningcollector.KubernetesWarningHandler
}

type observer struct {
	kubeClient    kubernetes.Interface
	healthHandler health.HealthHandler
	options       Options
}

// Init creates a new Observer
func Init(kubeClient kubernetes.Interface, healthHandler health.HealthHandler, options Options) Observer {
	if options.Parallelism < 1 {
		options.Parallelism = defaultParallelism
	}
	return &observer{
		kubeClient:    kubeClient,
		healthHandler: healthHandler,
		options:       options,
	}
}

func (o *observer) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := o.Observe(ctx); err != nil && ctx.Err() == nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("Observation pass failed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (o *observer) Observe(ctx context.Context) ([]Observation, error) {
	logger := zerolog.Ctx(ctx).With().Str("pass_id", xid.New().String()).Logger()
	ctx = warningcollector.WithWarningCollectionToContext(logger.WithContext(ctx))

	start := time.Now()
	defer func() { metrics.AddObservationPassDuration(time.Since(start)) }()

	pods, err := kubequery.GetPodsForSelector(ctx, o.kubeClient, o.options.Namespace, o.options.LabelSelector)
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}
	sortUtils.Pods(pods, sortUtils.Ascending, sortUtils.ByPodCreationTimestamp, sortUtils.ByPodNamespacedName)

	observations := make([]Observation, len(pods))
	var g errgroup.Group
	g.SetLimit(o.options.Parallelism)
	for i := range pods {
		g.Go(func() error {
			observations[i] = o.observePod(ctx, &pods[i])
			return nil
		})
	}
	_ = g.Wait()

	failed, withErrors := 0, 0
	for _, observation := range observations {
		if observation.Failed() {
			failed++
		}
		if len(observation.Errors) > 0 {
			withErrors++
		}
	}
	ev := logger.Debug()
	if o.options.WarningHandler != nil {
		ev.Strs("warnings", o.options.WarningHandler.GetWarningCollectionFromContext(ctx))
	}
	ev.Int("pods", len(pods)).
		Int("failed", failed).
		Int("withErrors", withErrors).
		Dur("elapsed", time.Since(start)).
		Msg("Observation pass completed")
	return observations, nil
}

func (o *observer) observePod(ctx context.Context, pod *corev1.Pod) Observation {
	logger := zerolog.Ctx(ctx).With().Str("namespace", pod.Namespace).Str("pod", pod.Name).Logger()
	ctx = logger.WithContext(ctx)
	observation := Observation{Namespace: pod.Namespace, Name: pod.Name}

	if err := o.healthHandler.CheckForVolumeMountErrors(ctx, pod); err != nil {
		if failure := health.AsDeploymentFailed(err); failure != nil {
			observation.Failure = failure
			metrics.AddVolumeMountFailure(pod.Namespace, failure.Reason)
			logger.Warn().Str("reason", failure.Reason).Msg(failure.Message)
		} else {
			observation.Errors = append(observation.Errors, err)
			metrics.AddObservationError(pod.Namespace, operationVolumeMount)
			logger.Error().Err(err).Msg("Failed to check volume mounts")
		}
	}

	last, err := o.healthHandler.FindLastJobExceptionTimestamp(ctx, pod)
	switch {
	case err != nil:
		observation.Errors = append(observation.Errors, err)
		metrics.AddObservationError(pod.Namespace, operationJobException)
		logger.Error().Err(err).Msg("Failed to find last job exception")
	case last != nil:
		observation.LastJobException = last
		metrics.SetLastJobException(pod.Namespace, pod.Name, *last)
	}
	return observation
}
