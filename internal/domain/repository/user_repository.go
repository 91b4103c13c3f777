package repository

import (
	"context"

	"github.com/jhoicas/punto-venta/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update actualiza name y email (el password se gestiona aparte).
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
