package repository

import (
	"context"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo de productos.
type ProductRepository interface {
	// List devuelve el catálogo completo en su orden natural (por ID).
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}
