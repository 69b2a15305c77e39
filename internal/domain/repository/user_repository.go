package repository

import (
	"context"

	"github.com/jhoicas/gategroup-ops/internal/domain/entity"
)

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	// FindByEmail devuelve nil, nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Ensure crea el usuario si el email no existe; no modifica usuarios existentes.
	Ensure(ctx context.Context, user *entity.User) error
}
