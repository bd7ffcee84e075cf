package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistock-api/internal/domain/entity"
)

// LowStockItem resultado crudo del repositorio para un producto en o bajo su mínimo.
type LowStockItem struct {
	ProductID     string
	SKU           string
	Name          string
	StockQuantity int
	MinimumStock  int
	Price         decimal.Decimal
}

// ProductFilter filtros del listado de catálogo. Campos vacíos no filtran.
type ProductFilter struct {
	Name       string // contiene, sin distinguir mayúsculas
	CategoryID string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// El saldo solo se modifica con ApplyDelta, dentro de la transacción del movimiento.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// List devuelve la página pedida ordenada por nombre y el total que cumple el filtro.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int, error)
	// Update guarda los datos editables del catálogo. Nunca toca stock_quantity.
	Update(ctx context.Context, product *entity.Product) error
	// Delete devuelve domain.ErrReferentialConflict si hay movimientos que lo referencian.
	Delete(ctx context.Context, id string) error

	// ApplyDelta suma delta al saldo almacenado con un UPDATE relativo, sin bajar de cero,
	// y devuelve el saldo anterior y el resultante.
	ApplyDelta(ctx context.Context, id string, delta int) (before, after int, err error)
	Balance(ctx context.Context, id string) (int, error)

	// ListLowStock devuelve los productos con saldo <= mínimo, mayor déficit primero.
	ListLowStock(ctx context.Context, limit int) ([]LowStockItem, error)
	Count(ctx context.Context) (int, error)
	CountLowStock(ctx context.Context) (int, error)
	StockValuation(ctx context.Context) (decimal.Decimal, error)
}
