package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo lectura de órdenes de catering.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// List devuelve las órdenes por fecha e ID.
func (r *OrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, date, customer, items, total, status FROM orders ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var (
			o    entity.Order
			date time.Time
		)
		if err := rows.Scan(&o.ID, &date, &o.Customer, &o.Items, &o.Total, &o.Status); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Date = date.Format("2006-01-02")
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
