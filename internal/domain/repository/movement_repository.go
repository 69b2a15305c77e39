package repository

import (
	"context"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// MovementRepository puerto de persistencia para movimientos de inventario.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	List(ctx context.Context, limit, offset int) ([]*entity.Movement, error)
}
