package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Los campos son opcionales a nivel de JSON: el gate decide qué falta.
// Quantity admite signo solo para ADJ.
type RegisterMovementRequest struct {
	ProductID    string           `json:"product_id"`
	MovementType string           `json:"movement_type"`
	Quantity     *decimal.Decimal `json:"quantity"`
	Reason       string           `json:"reason" validate:"max=1000"`
}

// MovementResponse salida de una entrada del ledger.
type MovementResponse struct {
	ID           int64     `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductSKU   string    `json:"product_sku,omitempty"`
	ProductName  string    `json:"product_name,omitempty"`
	MovementType string    `json:"movement_type"`
	Quantity     int       `json:"quantity"`
	Reason       string    `json:"reason"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username,omitempty"`
	StockBefore  int       `json:"stock_before"`
	StockAfter   int       `json:"stock_after"`
	CreatedAt    time.Time `json:"created_at"`
}

// MovementListRequest filtros de GET /api/inventory/movements.
type MovementListRequest struct {
	Limit        int    `query:"limit" validate:"min=0"`
	Offset       int    `query:"offset" validate:"min=0"`
	ProductID    string `query:"product_id" validate:"omitempty,uuid"`
	MovementType string `query:"type" validate:"omitempty,oneof=IN OUT ADJ"`
	UserID       string `query:"user_id" validate:"omitempty,uuid"`
	Username     string `query:"username" validate:"max=150"`
	From         string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To           string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Q            string `query:"q" validate:"max=200"`
}

// Normalize deja el tipo en mayúsculas, igual que lo interpreta el registro de movimientos.
// Debe llamarse antes de validar.
func (r *MovementListRequest) Normalize() {
	r.MovementType = strings.ToUpper(strings.TrimSpace(r.MovementType))
}

// Page devuelve la paginación pedida con los valores por defecto aplicados.
func (r MovementListRequest) Page(def, maxLimit int) PageRequest {
	p := PageRequest{Limit: r.Limit, Offset: r.Offset}
	p.DefaultPage(def, maxLimit)
	return p
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// BalanceResponse saldo actual de un producto.
type BalanceResponse struct {
	ProductID     string `json:"product_id"`
	StockQuantity int    `json:"stock_quantity"`
}

// StockAlertDTO producto en o bajo su stock mínimo, con la reposición sugerida.
type StockAlertDTO struct {
	ProductID           string          `json:"product_id"`
	SKU                 string          `json:"sku"`
	ProductName         string          `json:"product_name"`
	CurrentStock        int             `json:"current_stock"`
	MinimumStock        int             `json:"minimum_stock"`
	Deficit             int             `json:"deficit"`
	SuggestedOrderQty   int             `json:"suggested_order_qty"`   // 2*mínimo - saldo
	EstimatedOrderValue decimal.Decimal `json:"estimated_order_value"` // sugerido * precio
}

// DashboardSummary métricas generales del inventario.
type DashboardSummary struct {
	TotalProducts    int                `json:"total_products"`
	TotalMovements   int                `json:"total_movements"`
	LowStockCount    int                `json:"low_stock_count"`
	StockValuation   decimal.Decimal    `json:"stock_valuation"`
	RecentActivities []MovementResponse `json:"recent_activities"`
}
