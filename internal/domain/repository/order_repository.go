package repository

import (
	"context"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// OrderRepository puerto de lectura de órdenes de catering.
type OrderRepository interface {
	// List devuelve las órdenes por fecha e ID ascendentes.
	List(ctx context.Context) ([]entity.Order, error)
}
