package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

type RepositorySuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	ctx  context.Context
}

func (s *RepositorySuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	require.NoError(s.T(), err)
	s.mock = mock
	s.ctx = context.Background()
}

func (s *RepositorySuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func (s *RepositorySuite) TestProductList_OrdenPorID() {
	rows := pgxmock.NewRows([]string{"id", "sku", "name", "unit", "std_spec"}).
		AddRow("P-1001", "FO-001", "Sándwich de Pollo 180g", "pz", decimal.NewFromInt(1)).
		AddRow("P-1002", "BE-010", "Refresco 355ml", "lata", decimal.NewFromInt(1))
	s.mock.ExpectQuery(`SELECT id, sku, name, unit, std_spec FROM products ORDER BY id`).WillReturnRows(rows)

	products, err := NewProductRepository(s.mock).List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(products, 2)
	s.Equal("P-1001", products[0].ID)
	s.Equal("lata", products[1].Unit)
	s.True(products[1].StdSpec.Equal(decimal.NewFromInt(1)))
}

func (s *RepositorySuite) TestProductGetByID_NoExiste() {
	s.mock.ExpectQuery(`FROM products WHERE id = \$1`).
		WithArgs("P-9999").
		WillReturnRows(pgxmock.NewRows([]string{"id", "sku", "name", "unit", "std_spec"}))

	p, err := NewProductRepository(s.mock).GetByID(s.ctx, "P-9999")
	s.NoError(err)
	s.Nil(p)
}

func (s *RepositorySuite) TestProductList_ErrorDeConsulta() {
	s.mock.ExpectQuery(`FROM products`).WillReturnError(errors.New("conexión perdida"))

	_, err := NewProductRepository(s.mock).List(s.ctx)
	s.Error(err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ubicaciones
// ──────────────────────────────────────────────────────────────────────────────

func (s *RepositorySuite) TestLocationListDrawers() {
	rows := pgxmock.NewRows([]string{"id", "name"}).
		AddRow("DR-101", "Cajón Frío A").
		AddRow("DR-201", "Seco A")
	s.mock.ExpectQuery(`SELECT id, name FROM drawers`).WillReturnRows(rows)

	drawers, err := NewLocationRepository(s.mock).ListDrawers(s.ctx)
	s.Require().NoError(err)
	s.Equal([]entity.Drawer{{ID: "DR-101", Name: "Cajón Frío A"}, {ID: "DR-201", Name: "Seco A"}}, drawers)
}

func (s *RepositorySuite) TestLocationListPlants() {
	rows := pgxmock.NewRows([]string{"id", "name"}).AddRow("PL-01", "Planta 1")
	s.mock.ExpectQuery(`SELECT id, name FROM plants`).WillReturnRows(rows)

	plants, err := NewLocationRepository(s.mock).ListPlants(s.ctx)
	s.Require().NoError(err)
	s.Equal([]entity.Plant{{ID: "PL-01", Name: "Planta 1"}}, plants)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func (s *RepositorySuite) TestMovementCreate_AsignaID() {
	cost := decimal.RequireFromString("12.5")
	m := &entity.Movement{
		Type:        entity.MovementTypeEntry,
		ProductID:   "P-1002",
		SKU:         "BE-010",
		ProductName: "Refresco 355ml",
		Unit:        "lata",
		LotNumber:   "L-7781",
		Quantity:    decimal.NewFromInt(24),
		UnitCost:    &cost,
		PlantID:     "PL-01",
		DrawerID:    "DR-101",
		QAStatus:    entity.QAStatusPass,
		CreatedAt:   time.Date(2025, 10, 5, 15, 30, 0, 0, time.UTC),
		CreatedBy:   "u-1",
	}
	s.mock.ExpectExec(`INSERT INTO movements`).
		WithArgs(
			pgxmock.AnyArg(), "ENTRY", "P-1002", "BE-010", "Refresco 355ml", "lata", "L-7781", pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), "PL-01", "DR-101", pgxmock.AnyArg(), "PASS", "",
			"", pgxmock.AnyArg(), "", "", m.CreatedAt, "u-1",
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := NewMovementRepository(s.mock).Create(s.ctx, m)
	s.Require().NoError(err)
	s.NotEmpty(m.ID)
}

func (s *RepositorySuite) TestMovementCreate_ErrorSeEnvuelve() {
	s.mock.ExpectExec(`INSERT INTO movements`).WillReturnError(errors.New("fk violation"))

	err := NewMovementRepository(s.mock).Create(s.ctx, &entity.Movement{ID: "m-1", Type: entity.MovementTypeAdjust})
	s.Require().Error(err)
	s.Contains(err.Error(), "create movement")
}

func (s *RepositorySuite) TestMovementList_Nulos() {
	created := time.Date(2025, 10, 5, 15, 30, 0, 0, time.UTC)
	expiry := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	cost := decimal.RequireFromString("3.10")
	cols := []string{
		"id", "type", "product_id", "sku", "product_name", "unit", "lot_number", "expiry_date", "quantity", "unit_cost",
		"plant_id", "drawer_id", "temperature", "qa_status", "supplier", "flight_id", "flight_date", "destination_area", "notes",
		"created_at", "created_by",
	}
	rows := pgxmock.NewRows(cols).
		AddRow("m-2", "ADJUST", "P-1003", "WA-500", "Agua 500ml", "botella", "", nil, decimal.NewFromInt(-3), nil,
			"PL-01", "", nil, "", "", "", nil, "", "merma", created, "u-1").
		AddRow("m-1", "ENTRY", "P-1002", "BE-010", "Refresco 355ml", "lata", "L-1", &expiry, decimal.NewFromInt(24), &cost,
			"PL-01", "DR-101", nil, "PASS", "SkyFoods", "", nil, "", "", created, "u-1")
	s.mock.ExpectQuery(`FROM movements ORDER BY created_at DESC`).WithArgs(50, 0).WillReturnRows(rows)

	list, err := NewMovementRepository(s.mock).List(s.ctx, 50, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 2)

	s.Equal(entity.MovementTypeAdjust, list[0].Type)
	s.True(list[0].Quantity.Equal(decimal.NewFromInt(-3)))
	s.Nil(list[0].UnitCost)
	s.Nil(list[0].ExpiryDate)

	s.Require().NotNil(list[1].UnitCost)
	s.True(list[1].UnitCost.Equal(cost))
	s.Require().NotNil(list[1].ExpiryDate)
	s.Equal(expiry, *list[1].ExpiryDate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes
// ──────────────────────────────────────────────────────────────────────────────

func (s *RepositorySuite) TestOrderList_FormateaFecha() {
	rows := pgxmock.NewRows([]string{"id", "date", "customer", "items", "total", "status"}).
		AddRow("ORD-1001", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), "AeroMex Catering", 42, decimal.RequireFromString("12850.75"), "NEW")
	s.mock.ExpectQuery(`FROM orders ORDER BY date, id`).WillReturnRows(rows)

	orders, err := NewOrderRepository(s.mock).List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal("2025-10-01", orders[0].Date)
	s.Equal(42, orders[0].Items)
	s.Equal("12850.75", orders[0].Total.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func (s *RepositorySuite) TestUserFindByEmail_NormalizaEmail() {
	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "status", "created_at", "updated_at"}).
		AddRow("u-1", "operador@gategroup.com", "$2a$10$hash", "Operador", "almacen", "active", now, now)
	s.mock.ExpectQuery(`FROM users WHERE lower\(email\) = \$1`).
		WithArgs("operador@gategroup.com").
		WillReturnRows(rows)

	u, err := NewUserRepository(s.mock).FindByEmail(s.ctx, "  Operador@GateGroup.com ")
	s.Require().NoError(err)
	s.Require().NotNil(u)
	s.Equal("u-1", u.ID)
}

func (s *RepositorySuite) TestUserEnsure_ConflictoNoEsError() {
	u := &entity.User{Email: "operador@gategroup.com", PasswordHash: "h", Name: "Operador", Role: "almacen", Status: "active"}
	s.mock.ExpectExec(`ON CONFLICT \(email\) DO NOTHING`).
		WithArgs(pgxmock.AnyArg(), "operador@gategroup.com", "h", "Operador", "almacen", "active", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	s.NoError(NewUserRepository(s.mock).Ensure(s.ctx, u))
	s.NotEmpty(u.ID)
}

func (s *RepositorySuite) TestUserEnsure_CarreraPorEmailDuplicado() {
	u := &entity.User{Email: "operador@gategroup.com", PasswordHash: "h", Name: "Operador", Role: "almacen", Status: "active"}
	s.mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "operador@gategroup.com", "h", "Operador", "almacen", "active", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	s.NoError(NewUserRepository(s.mock).Ensure(s.ctx, u), "un email duplicado no es error")
}

func (s *RepositorySuite) TestUserEnsure_OtroErrorSePropaga() {
	u := &entity.User{Email: "operador@gategroup.com", PasswordHash: "h", Name: "Operador", Role: "almacen", Status: "active"}
	s.mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "operador@gategroup.com", "h", "Operador", "almacen", "active", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("conexión cerrada (23505 en el texto)"))

	err := NewUserRepository(s.mock).Ensure(s.ctx, u)
	s.Require().Error(err)
	s.Contains(err.Error(), "ensure user")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505")), "solo se reconoce *pgconn.PgError")
}
