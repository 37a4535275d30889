package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	runDuration  *prom.HistogramVec
	fileOutcomes *prom.CounterVec
	runOutcomes  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers metrics on the registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		runDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "moddocs",
			Name:      "run_duration_seconds",
			Help:      "Duration of maintenance runs",
			Buckets:   prom.DefBuckets,
		}, []string{"command"}),
		fileOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "moddocs",
			Name:      "file_outcomes_total",
			Help:      "Per-file outcomes by command and status",
		}, []string{"command", "status"}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "moddocs",
			Name:      "run_outcomes_total",
			Help:      "Run outcomes by command and final status",
		}, []string{"command", "outcome"}),
	}
	reg.MustRegister(pr.runDuration, pr.fileOutcomes, pr.runOutcomes)
	return pr
}

func (pr *PrometheusRecorder) ObserveRunDuration(command string, d time.Duration) {
	pr.runDuration.WithLabelValues(command).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncFileOutcome(command, status string) {
	pr.fileOutcomes.WithLabelValues(command, status).Inc()
}

func (pr *PrometheusRecorder) IncRunOutcome(command string, failed bool) {
	outcome := "success"
	if failed {
		outcome = "failed"
	}
	pr.runOutcomes.WithLabelValues(command, outcome).Inc()
}

// HTTPHandler returns an http.Handler serving Prometheus metrics for the
// provided registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
