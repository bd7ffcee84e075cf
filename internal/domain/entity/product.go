package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su saldo de stock.
// StockQuantity solo cambia vía movimientos; MinimumStock define el umbral de alerta.
type Product struct {
	ID            string
	SKU           string // código único
	CategoryID    string
	CategoryName  string // solo lectura, viene del join con categories
	Name          string
	Description   string
	Price         decimal.Decimal // precio unitario, nunca negativo
	StockQuantity int
	MinimumStock  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el saldo está en o por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinimumStock
}

// StockValue devuelve el valor del stock actual (saldo * precio).
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity)))
}
