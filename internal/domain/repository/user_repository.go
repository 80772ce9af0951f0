package repository

import (
	"context"

	"github.com/jhoicas/vitasport-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update actualiza username, fullname y role; si passwordHash no es vacío,
	// también la contraseña.
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
