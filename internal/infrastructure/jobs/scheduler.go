// Package jobs programa las tareas periódicas del servicio con gocron.
package jobs

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/jhoicas/gategroup-ops/pkg/logger"
	"github.com/jhoicas/gategroup-ops/pkg/metrics"
)

// PurgeDraftsJob nombre del job de limpieza de borradores.
const PurgeDraftsJob = "purge-idle-drafts"

// DraftPurger descarta borradores sin uso y devuelve cuántos eliminó.
type DraftPurger interface {
	PurgeIdle(maxIdle time.Duration) int
}

// Scheduler envuelve gocron con logging y métricas por job.
type Scheduler struct {
	scheduler gocron.Scheduler
	log       *logger.Logger
	metrics   *metrics.JobMetrics
}

// NewScheduler crea el planificador (detenido).
func NewScheduler(log *logger.Logger, m *metrics.JobMetrics) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("crear scheduler: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{scheduler: s, log: log.Component("jobs"), metrics: m}, nil
}

// RegisterDraftPurge limpia cada interval los borradores inactivos por más de maxIdle.
func (s *Scheduler) RegisterDraftPurge(purger DraftPurger, interval, maxIdle time.Duration) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { s.PurgeDrafts(purger, maxIdle) }),
		gocron.WithName(PurgeDraftsJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("registrar %s: %w", PurgeDraftsJob, err)
	}
	return nil
}

// PurgeDrafts ejecuta una pasada de limpieza.
func (s *Scheduler) PurgeDrafts(purger DraftPurger, maxIdle time.Duration) int {
	start := time.Now()
	n := purger.PurgeIdle(maxIdle)
	s.metrics.Observe(PurgeDraftsJob, time.Since(start), nil)
	if n > 0 {
		s.log.Info().Int("purged", n).Dur("max_idle", maxIdle).Msg("borradores inactivos descartados")
	}
	return n
}

// Start arranca el planificador.
func (s *Scheduler) Start() {
	s.log.Info().Int("jobs", len(s.scheduler.Jobs())).Msg("iniciando scheduler")
	s.scheduler.Start()
}

// Stop detiene el planificador esperando los jobs en curso.
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}
