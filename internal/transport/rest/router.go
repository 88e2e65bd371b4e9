package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/zakat-tracker/internal/transport/middleware"
)

// RouterDeps bundles what the ops router serves.
type RouterDeps struct {
	Health *HealthHandler
	Ops    *OpsHandler
	// Operator guards /ops routes.
	Operator middleware.Middleware
	// TriggerLimit throttles manual triggers; nil disables throttling.
	TriggerLimit middleware.Middleware
	Gatherer     prometheus.Gatherer
	Logger       *slog.Logger
}

// NewRouter builds the operational HTTP surface.
func NewRouter(d RouterDeps) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/live", d.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", d.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", d.Health.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	ops := r.PathPrefix("/ops").Subrouter()
	ops.Use(mux.MiddlewareFunc(d.Operator))
	ops.HandleFunc("/jobs", d.Ops.ListJobs).Methods(http.MethodGet)

	ops.Handle("/jobs/{name}/trigger", d.TriggerLimit.ThenFunc(d.Ops.TriggerJob)).Methods(http.MethodPost)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
	)(r)
}

// TriggerLimitKey charges manual triggers per caller and per job, so retrying
// one stuck job does not lock the operator out of the others.
func TriggerLimitKey(r *http.Request) string {
	return middleware.OperatorOrIP(r) + "|" + mux.Vars(r)["name"]
}
