package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo persistencia de movimientos sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, type, product_id, sku, product_name, unit, lot_number, expiry_date, quantity, unit_cost,
		plant_id, drawer_id, temperature, qa_status, supplier, flight_id, flight_date, destination_area, notes,
		created_at, created_by`

// Create persiste un movimiento. Asigna ID si viene vacío.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		m.ID, string(m.Type), m.ProductID, m.SKU, m.ProductName, m.Unit, m.LotNumber, m.ExpiryDate,
		m.Quantity, m.UnitCost, m.PlantID, m.DrawerID, m.Temperature, m.QAStatus, m.Supplier,
		m.FlightID, m.FlightDate, m.DestinationArea, m.Notes, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve los movimientos más recientes primero.
func (r *MovementRepo) List(ctx context.Context, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Movement, 0)
	for rows.Next() {
		var (
			m       entity.Movement
			movType string
		)
		if err := rows.Scan(
			&m.ID, &movType, &m.ProductID, &m.SKU, &m.ProductName, &m.Unit, &m.LotNumber, &m.ExpiryDate,
			&m.Quantity, &m.UnitCost, &m.PlantID, &m.DrawerID, &m.Temperature, &m.QAStatus, &m.Supplier,
			&m.FlightID, &m.FlightDate, &m.DestinationArea, &m.Notes, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Type = entity.MovementType(movType)
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return list, nil
}
