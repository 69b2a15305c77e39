package movement

import (
	"context"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// ProductSource entrega el catálogo vigente al controlador.
type ProductSource interface {
	Products(ctx context.Context) ([]entity.Product, error)
}

// Saver persiste un movimiento ya validado. Cualquier error se reporta como fallo de guardado.
type Saver interface {
	Save(ctx context.Context, m *entity.Movement) error
}
