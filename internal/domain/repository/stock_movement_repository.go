package repository

import (
	"context"
	"time"

	"github.com/jhoicas/sistock-api/internal/domain/entity"
)

// MovementFilter criterios de consulta del ledger. Campos vacíos no filtran.
type MovementFilter struct {
	ProductID string
	Type      string
	UserID    string
	Username  string // contiene, sin distinguir mayúsculas
	From      *time.Time
	To        *time.Time // excluyente
	Search    string // nombre/SKU de producto, motivo o usuario
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto del ledger de movimientos (solo inserción y lectura).
type StockMovementRepository interface {
	// Append persiste el movimiento y completa ID y CreatedAt.
	Append(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id int64) (*entity.MovementView, error)
	// List devuelve la página pedida (más reciente primero) y el total que cumple el filtro.
	List(ctx context.Context, filter MovementFilter) ([]*entity.MovementView, int, error)
	Count(ctx context.Context) (int, error)
}
