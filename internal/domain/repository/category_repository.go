package repository

import (
	"context"

	"github.com/jhoicas/sistock-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// Create devuelve domain.ErrDuplicate si el nombre ya existe.
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Category, int, error)
	// Delete devuelve domain.ErrReferentialConflict si hay productos en la categoría.
	Delete(ctx context.Context, id string) error
}
