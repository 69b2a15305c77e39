package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados de un envío de movimiento.
const (
	OutcomeSaved    = "saved"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
	OutcomeRejected = "rejected"
)

// MovementMetrics registra envíos de movimientos y la duración del guardado.
type MovementMetrics struct {
	submissions  *prometheus.CounterVec
	saveDuration *prometheus.HistogramVec
	openDrafts   prometheus.Gauge
}

// NewMovementMetrics registra las métricas en reg. Con reg nil devuelve un recolector inerte.
func NewMovementMetrics(reg prometheus.Registerer) *MovementMetrics {
	if reg == nil {
		return &MovementMetrics{}
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "movement_submissions_total",
		Help: "Movement submissions by type and outcome.",
	}, []string{"type", "outcome"})
	saveDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "movement_save_duration_seconds",
		Help:    "Duration of the movement saver call in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"type"})
	openDrafts := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "movement_open_drafts",
		Help: "Movement drafts currently held in memory.",
	})
	reg.MustRegister(submissions, saveDuration, openDrafts)
	return &MovementMetrics{
		submissions:  submissions,
		saveDuration: saveDuration,
		openDrafts:   openDrafts,
	}
}

// IncSubmission cuenta un envío con su resultado.
func (m *MovementMetrics) IncSubmission(movementType, outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(movementType), outcome).Inc()
}

// ObserveSave registra la duración de una llamada al guardado.
func (m *MovementMetrics) ObserveSave(movementType string, d time.Duration) {
	if m == nil || m.saveDuration == nil {
		return
	}
	m.saveDuration.WithLabelValues(normalizeLabel(movementType)).Observe(d.Seconds())
}

// SetOpenDrafts publica el número de borradores abiertos.
func (m *MovementMetrics) SetOpenDrafts(n int) {
	if m == nil || m.openDrafts == nil {
		return
	}
	m.openDrafts.Set(float64(n))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
