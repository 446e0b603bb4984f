package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SnapshotsApplied = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "opticare_snapshots_applied_total",
		Help: "Full-collection snapshots applied to the record store.",
	}, []string{"collection"})

	SubscriptionErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "opticare_subscription_errors_total",
		Help: "Errors observed on per-collection subscription streams.",
	}, []string{"collection"})

	WriteFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "opticare_write_failures_total",
		Help: "Failed create, update or delete calls to the remote store.",
	}, []string{"collection"})
)

func init() {
	prometheus.MustRegister(SnapshotsApplied, SubscriptionErrors, WriteFailures)
}

// Handler serves the prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
