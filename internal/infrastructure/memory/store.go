// Package memory implementa los puertos de repositorio en memoria para desarrollo y demos.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
	"github.com/jhoicas/gategroup-ops/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*Store)(nil)
	_ repository.LocationRepository = (*Store)(nil)
	_ repository.UserRepository     = (*Store)(nil)
	_ repository.OrderRepository    = orderView{}
	_ repository.MovementRepository = movementView{}
)

// Store guarda catálogo, órdenes, usuarios y movimientos en memoria. Seguro para uso concurrente.
type Store struct {
	mu        sync.RWMutex
	products  []entity.Product
	plants    []entity.Plant
	drawers   []entity.Drawer
	orders    []entity.Order
	users     map[string]*entity.User // por email en minúsculas
	movements []*entity.Movement
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{users: make(map[string]*entity.User)}
}

// NewSeededStore crea un almacén con el catálogo y las órdenes de demostración.
func NewSeededStore() *Store {
	s := NewStore()
	s.products = SeedProducts()
	s.plants = SeedPlants()
	s.drawers = SeedDrawers()
	s.orders = SeedOrders()
	return s
}

func (s *Store) List(ctx context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product(nil), s.products...), nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Store) ListPlants(ctx context.Context) ([]entity.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Plant(nil), s.plants...), nil
}

func (s *Store) ListDrawers(ctx context.Context) ([]entity.Drawer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Drawer(nil), s.drawers...), nil
}

// Orders expone el repositorio de órdenes (List colisiona con el de productos).
func (s *Store) Orders() repository.OrderRepository { return orderView{s} }

// Movements expone el repositorio de movimientos.
func (s *Store) Movements() repository.MovementRepository { return movementView{s} }

func (s *Store) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *Store) Ensure(ctx context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, exists := s.users[key]; exists {
		return nil
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	cp := *u
	cp.Email = key
	s.users[key] = &cp
	return nil
}

type orderView struct{ s *Store }

func (v orderView) List(ctx context.Context) ([]entity.Order, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	out := append([]entity.Order(nil), v.s.orders...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type movementView struct{ s *Store }

func (v movementView) Create(ctx context.Context, m *entity.Movement) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	cp := *m
	v.s.movements = append(v.s.movements, &cp)
	return nil
}

// List devuelve los movimientos más recientes primero.
func (v movementView) List(ctx context.Context, limit, offset int) ([]*entity.Movement, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	n := len(v.s.movements)
	out := make([]*entity.Movement, 0)
	for i := n - 1 - offset; i >= 0 && len(out) < limit; i-- {
		cp := *v.s.movements[i]
		out = append(out, &cp)
	}
	return out, nil
}

// SeedProducts catálogo de demostración.
func SeedProducts() []entity.Product {
	one := decimal.NewFromInt(1)
	return []entity.Product{
		{ID: "P-1001", SKU: "FO-001", Name: "Sándwich de Pollo 180g", Unit: "pz", StdSpec: one},
		{ID: "P-1002", SKU: "BE-010", Name: "Refresco 355ml", Unit: "lata", StdSpec: one},
		{ID: "P-1003", SKU: "WA-500", Name: "Agua 500ml", Unit: "botella", StdSpec: one},
		{ID: "P-1004", SKU: "SN-040", Name: "Botana 40g", Unit: "pz", StdSpec: one},
	}
}

// SeedPlants plantas de demostración.
func SeedPlants() []entity.Plant {
	return []entity.Plant{{ID: "PL-01", Name: "Planta 1"}, {ID: "PL-02", Name: "Planta 2"}}
}

// SeedDrawers cajones de demostración.
func SeedDrawers() []entity.Drawer {
	return []entity.Drawer{
		{ID: "DR-101", Name: "Cajón Frío A"},
		{ID: "DR-102", Name: "Cajón Frío B"},
		{ID: "DR-201", Name: "Seco A"},
	}
}

// SeedOrders órdenes de demostración.
func SeedOrders() []entity.Order {
	o := func(id, date, customer string, items int, total, status string) entity.Order {
		return entity.Order{ID: id, Date: date, Customer: customer, Items: items, Total: decimal.RequireFromString(total), Status: status}
	}
	return []entity.Order{
		o("ORD-1001", "2025-10-01", "AeroMex Catering", 42, "12850.75", entity.OrderStatusNew),
		o("ORD-1002", "2025-10-01", "SkyFoods", 18, "3450.00", entity.OrderStatusPicking),
		o("ORD-1003", "2025-10-02", "Gate Express", 67, "21340.10", entity.OrderStatusReady),
		o("ORD-1004", "2025-10-02", "Lounge Premium", 12, "1890.00", entity.OrderStatusShipped),
		o("ORD-1005", "2025-10-03", "AeroMex Catering", 25, "7250.99", entity.OrderStatusCancelled),
		o("ORD-1006", "2025-10-04", "SkyFoods", 31, "9700.50", entity.OrderStatusReady),
		o("ORD-1007", "2025-10-04", "Gate Express", 10, "1899.99", entity.OrderStatusNew),
		o("ORD-1008", "2025-10-05", "AeroMex Catering", 14, "4850.00", entity.OrderStatusPicking),
		o("ORD-1009", "2025-10-06", "SkyFoods", 22, "6850.25", entity.OrderStatusShipped),
		o("ORD-1010", "2025-10-06", "Gate Express", 50, "15820.75", entity.OrderStatusReady),
	}
}

// NewUser arma un usuario activo con timestamps.
func NewUser(email, name, role, passwordHash string) *entity.User {
	now := time.Now()
	return &entity.User{
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
