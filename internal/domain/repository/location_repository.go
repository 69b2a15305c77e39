package repository

import (
	"context"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// LocationRepository puerto de lectura de plantas y cajones.
type LocationRepository interface {
	ListPlants(ctx context.Context) ([]entity.Plant, error)
	ListDrawers(ctx context.Context) ([]entity.Drawer, error)
}
