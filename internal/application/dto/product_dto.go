package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El saldo inicia en 0.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=50"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID   string          `json:"category_id" validate:"required,uuid"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	MinimumStock int             `json:"minimum_stock" validate:"min=0"`
}

// UpdateProductRequest edición parcial del catálogo; solo se aplican los campos enviados.
// El SKU es inmutable y el saldo solo cambia vía movimientos.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID    *string          `json:"category_id" validate:"omitempty,uuid"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	MinimumStock  *int             `json:"minimum_stock" validate:"omitempty,min=0"`
	StockQuantity *int             `json:"stock_quantity"` // se rechaza si viene
}

// Empty indica que no se envió ningún campo editable.
func (r UpdateProductRequest) Empty() bool {
	return r.Name == nil && r.CategoryID == nil && r.Description == nil && r.Price == nil && r.MinimumStock == nil
}

// ProductListRequest filtros de GET /api/products.
type ProductListRequest struct {
	Limit      int    `query:"limit" validate:"min=0"`
	Offset     int    `query:"offset" validate:"min=0"`
	Name       string `query:"name" validate:"max=200"`
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	MinimumStock  int             `json:"minimum_stock"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
