package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
	MovementTypeADJ = "ADJ" // ajuste (puede subir o bajar el saldo)
)

// MovementTypes lista los tipos válidos en orden de presentación.
var MovementTypes = []string{MovementTypeIN, MovementTypeOUT, MovementTypeADJ}

// IsValidMovementType indica si t es uno de los tipos soportados.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJ:
		return true
	}
	return false
}

// StockMovement es una entrada inmutable del ledger de movimientos.
// Quantity es siempre la magnitud (>= 0); la dirección de un ADJ queda en StockBefore/StockAfter.
type StockMovement struct {
	ID          int64
	ProductID   string
	Type        string
	Quantity    int
	Reason      string
	UserID      string
	StockBefore int
	StockAfter  int
	CreatedAt   time.Time
}

// AppliedDelta devuelve el cambio efectivo que el movimiento produjo en el saldo.
func (m *StockMovement) AppliedDelta() int {
	return m.StockAfter - m.StockBefore
}

// MovementView es un movimiento con los datos de producto y usuario para listados.
type MovementView struct {
	StockMovement
	ProductSKU  string
	ProductName string
	Username    string
}
