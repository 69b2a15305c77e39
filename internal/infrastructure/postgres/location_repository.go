package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo lectura de plantas y cajones.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// ListPlants lista las plantas por ID.
func (r *LocationRepo) ListPlants(ctx context.Context) ([]entity.Plant, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM plants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()

	plants := make([]entity.Plant, 0)
	for rows.Next() {
		var p entity.Plant
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		plants = append(plants, p)
	}
	return plants, rows.Err()
}

// ListDrawers lista los cajones por ID.
func (r *LocationRepo) ListDrawers(ctx context.Context) ([]entity.Drawer, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM drawers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list drawers: %w", err)
	}
	defer rows.Close()

	drawers := make([]entity.Drawer, 0)
	for rows.Next() {
		var d entity.Drawer
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan drawer: %w", err)
		}
		drawers = append(drawers, d)
	}
	return drawers, rows.Err()
}
