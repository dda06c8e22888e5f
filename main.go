package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/events"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/health"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/observer"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/router"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/utils"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/utils/warningcollector"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	c := config.MustParse()
	initLogger(c)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()
	ctx = log.Logger.WithContext(ctx)

	warningHandler := warningcollector.NewKubernetesWarningHandler()
	kubeClient, err := utils.GetKubernetesClient(c.KubeConfig, utils.WithWarningHandler(warningHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create kubernetes client")
	}

	healthHandler := health.NewSerializedHandler(health.Init(kubeClient, events.Init(kubeClient)))
	podObserver := observer.Init(kubeClient, healthHandler, observer.Options{
		Namespace:      c.WatchNamespace,
		LabelSelector:  c.PodLabelSelector,
		Parallelism:    c.ObserveParallelism,
		WarningHandler: warningHandler,
	})

	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", c.MetricsPort),
		Handler:           router.NewServer(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Msgf("Metrics are serving on port %d", c.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		log.Info().
			Str("namespace", c.WatchNamespace).
			Str("selector", c.PodLabelSelector).
			Dur("interval", c.ObserveInterval).
			Msg("Observing pods")
		podObserver.Run(gctx, c.ObserveInterval)
		return nil
	})

	<-gctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down metrics server")
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Stopped with error")
	}
}

func initLogger(c config.Config) {
	logLevel, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.DurationFieldUnit = time.Millisecond
	if c.LogPrettyPrint {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	zerolog.DefaultContextLogger = &log.Logger

	if err != nil {
		log.Warn().Msgf("Invalid log level '%s', fallback to '%s'", c.LogLevel, logLevel.String())
	}
}
