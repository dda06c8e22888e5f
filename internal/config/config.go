package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	MetricsPort    int    `envconfig:"METRICS_PORT" default:"9090" desc:"Port where metrics and health endpoints will be served"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogPrettyPrint bool   `envconfig:"LOG_PRETTY" default:"false"`
	KubeConfig     string `envconfig:"KUBECONFIG" desc:"Path to a kubeconfig file, the in-cluster config is used when empty"`

	WatchNamespace     string        `envconfig:"WATCH_NAMESPACE" desc:"Namespace of the observed pods, all namespaces when empty"`
	PodLabelSelector   string        `envconfig:"POD_LABEL_SELECTOR" default:"type=flink-native-kubernetes" desc:"Label selector of the observed pods"`
	ObserveInterval    time.Duration `envconfig:"OBSERVE_INTERVAL" default:"15s" desc:"Time between observation passes"`
	ObserveParallelism int           `envconfig:"OBSERVE_PARALLELISM" default:"5" desc:"Maximum number of pods observed concurrently"`
}

func MustParse() Config {
	s, err := Parse()
	if err != nil {
		_ = envconfig.Usage("", &s)
		log.Fatal().Msg(err.Error())
	}

	return s
}

func Parse() (Config, error) {
	var s Config
	err := envconfig.Process("", &s)
	return s, err
}
