// Package order casos de uso del listado de órdenes de catering.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gategroup-ops/internal/domain"
	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/order"
	"github.com/jhoicas/gategroup-ops/internal/domain/repository"
)

// ReportRenderer convierte un listado filtrado en un documento.
type ReportRenderer interface {
	RenderOrders(ctx context.Context, orders []entity.Order, f order.Filter, generatedAt time.Time) ([]byte, error)
}

// OrderUseCase listado, estados y reporte de órdenes.
type OrderUseCase struct {
	repo     repository.OrderRepository
	renderer ReportRenderer
	clock    func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, renderer ReportRenderer) *OrderUseCase {
	return &OrderUseCase{repo: repo, renderer: renderer, clock: time.Now}
}

// List devuelve las órdenes que cumplen el filtro.
func (uc *OrderUseCase) List(ctx context.Context, f order.Filter) ([]entity.Order, error) {
	if !order.ValidStatus(f.Status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, f.Status)
	}
	if f.Date != "" {
		if _, err := time.Parse("2006-01-02", f.Date); err != nil {
			return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, f.Date)
		}
	}
	orders, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	return order.Apply(orders, f), nil
}

// Statuses diccionario de estados.
func (uc *OrderUseCase) Statuses() []order.Status {
	return append([]order.Status(nil), order.Statuses...)
}

// Report genera el PDF del listado filtrado.
func (uc *OrderUseCase) Report(ctx context.Context, f order.Filter) ([]byte, error) {
	orders, err := uc.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderOrders(ctx, orders, f, uc.clock())
}
