package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gategroup-ops/pkg/metrics"
)

func TestMovementMetrics_CuentaEnvios(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMovementMetrics(reg)

	m.IncSubmission("ENTRY", metrics.OutcomeSaved)
	m.IncSubmission("ENTRY", metrics.OutcomeSaved)
	m.IncSubmission("ISSUE", metrics.OutcomeInvalid)
	m.ObserveSave("ENTRY", 650*time.Millisecond)
	m.SetOpenDrafts(3)

	n, err := testutil.GatherAndCount(reg, "movement_submissions_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMovementMetrics_NilNoFalla(t *testing.T) {
	var m *metrics.MovementMetrics
	assert.NotPanics(t, func() {
		m.IncSubmission("ENTRY", metrics.OutcomeFailed)
		m.ObserveSave("ENTRY", time.Second)
		m.SetOpenDrafts(1)
	})

	inert := metrics.NewMovementMetrics(nil)
	assert.NotPanics(t, func() { inert.IncSubmission("ADJUST", metrics.OutcomeRejected) })
}

func TestJobMetrics_RegistraResultado(t *testing.T) {
	reg := prometheus.NewRegistry()
	j := metrics.NewJobMetrics(reg)

	j.Observe("purge-drafts", time.Millisecond, nil)
	j.Observe("purge-drafts", time.Millisecond, errors.New("boom"))

	n, err := testutil.GatherAndCount(reg, "job_runs_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}
