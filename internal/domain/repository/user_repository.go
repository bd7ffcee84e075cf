package repository

import (
	"context"

	"github.com/jhoicas/sistock-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Delete devuelve domain.ErrReferentialConflict si el usuario tiene movimientos registrados.
	Delete(ctx context.Context, id string) error
}
