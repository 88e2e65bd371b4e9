package jobs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	records  *prometheus.CounterVec
	running  *prometheus.GaugeVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zakat_job_runs_total",
			Help: "Job runs by outcome (success, failure, skipped).",
		}, []string{"job", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zakat_job_duration_seconds",
			Help:    "Job run duration.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
		}, []string{"job"}),
		records: f.NewCounterVec(prometheus.CounterOpts{
			Name: "zakat_job_records_total",
			Help: "Records handled by job runs, by outcome.",
		}, []string{"job", "outcome"}),
		running: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "zakat_job_running",
			Help: "1 while a job run is in flight.",
		}, []string{"job"}),
	}
}
