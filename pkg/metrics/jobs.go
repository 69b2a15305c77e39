package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JobMetrics registra ejecuciones de tareas programadas.
type JobMetrics struct {
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
}

// NewJobMetrics registra las métricas de tareas en reg.
func NewJobMetrics(reg prometheus.Registerer) *JobMetrics {
	if reg == nil {
		return &JobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "job_duration_seconds",
		Help:    "Duration of scheduled jobs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_runs_total",
		Help: "Scheduled job executions by result.",
	}, []string{"job", "result"})
	reg.MustRegister(duration, runs)
	return &JobMetrics{duration: duration, runs: runs}
}

// Observe registra una ejecución de job con su duración y resultado.
func (j *JobMetrics) Observe(job string, d time.Duration, err error) {
	if j == nil || j.duration == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	j.duration.WithLabelValues(normalizeLabel(job)).Observe(d.Seconds())
	j.runs.WithLabelValues(normalizeLabel(job), result).Inc()
}
