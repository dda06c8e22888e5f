package utils

import (
	"fmt"
	"net/http"

	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/metrics"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/utils/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

var (
	nrRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flink_operator_k8s_request_duration_seconds",
		Help:    "request duration done to k8s api in seconds bucket",
		Buckets: metrics.DefaultBuckets(),
	}, []string{"code", "method"})
)

// KubernetesClientOptions options for the Kubernetes client
type KubernetesClientOptions func(config *rest.Config)

// WithWarningHandler sets the handler of API server warning headers
func WithWarningHandler(handler rest.WarningHandlerWithContext) KubernetesClientOptions {
	return func(config *rest.Config) {
		config.WarningHandlerWithContext = handler
	}
}

// GetKubernetesClient Gets a kubernetes client from the kubeconfig file, or from the config of the running pod when kubeConfigPath is empty
func GetKubernetesClient(kubeConfigPath string, opts ...KubernetesClientOptions) (kubernetes.Interface, error) {
	config, err := getClientConfig(kubeConfigPath)
	if err != nil {
		return nil, err
	}
	addCommonConfigs(config, opts...)

	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return client, nil
}

func getClientConfig(kubeConfigPath string) (*rest.Config, error) {
	if kubeConfigPath == "" {
		config, err := rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
		return config, nil
	}

	config, err := clientcmd.BuildConfigFromFlags("", kubeConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig %s: %w", kubeConfigPath, err)
	}
	return config, nil
}

func addCommonConfigs(config *rest.Config, opts ...KubernetesClientOptions) {
	config.Wrap(func(rt http.RoundTripper) http.RoundTripper {
		return promhttp.InstrumentRoundTripperDuration(nrRequests, rt)
	})
	config.Wrap(logs.Logger(func(e *zerolog.Event) {
		e.Str("client", "kubernetes")
	}))
	for _, opt := range opts {
		opt(config)
	}
}
