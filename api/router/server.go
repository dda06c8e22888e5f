package router

import (
	"net/http"

	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/middleware/logger"
	"github.com/gaborgsomogyi/flink-kubernetes-operator/api/middleware/recovery"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/urfave/negroni/v3"
)

const (
	healthControllerPath = "/health/"
	metricsPath          = "/metrics"
)

// NewServer Constructor function for the metrics and health endpoints
func NewServer() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	initializeHealthEndpoint(router)
	router.Handle(metricsPath, promhttp.Handler()).Methods(http.MethodGet)

	n := negroni.New(
		recovery.NewMiddleware(),
		logger.NewZerologRequestIdMiddleware(),
		logger.NewZerologRequestDetailsMiddleware(),
		// Probes and scrapes arrive every few seconds
		logger.NewZerologResponseLoggerMiddleware(zerolog.DebugLevel),
	)
	n.UseHandler(router)

	return n
}

func initializeHealthEndpoint(router *mux.Router) {
	router.HandleFunc(healthControllerPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
}
