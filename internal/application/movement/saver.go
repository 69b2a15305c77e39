package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/repository"
)

var (
	_ Saver = (*SimulatedSaver)(nil)
	_ Saver = (*RepositorySaver)(nil)
)

// SimulatedSaver espera una latencia fija y luego registra el movimiento en repo (si hay).
type SimulatedSaver struct {
	latency time.Duration
	repo    repository.MovementRepository
}

// NewSimulatedSaver construye el guardado simulado. repo puede ser nil.
func NewSimulatedSaver(latency time.Duration, repo repository.MovementRepository) *SimulatedSaver {
	return &SimulatedSaver{latency: latency, repo: repo}
}

func (s *SimulatedSaver) Save(ctx context.Context, m *entity.Movement) error {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.repo == nil {
		return nil
	}
	return s.repo.Create(ctx, m)
}

// RepositorySaver inserta el movimiento en el repositorio.
type RepositorySaver struct {
	repo repository.MovementRepository
}

// NewRepositorySaver construye el guardado sobre repo.
func NewRepositorySaver(repo repository.MovementRepository) *RepositorySaver {
	return &RepositorySaver{repo: repo}
}

func (s *RepositorySaver) Save(ctx context.Context, m *entity.Movement) error {
	if err := s.repo.Create(ctx, m); err != nil {
		return fmt.Errorf("guardar movimiento: %w", err)
	}
	return nil
}
