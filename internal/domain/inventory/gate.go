package inventory

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistock-api/internal/domain"
	"github.com/jhoicas/sistock-api/internal/domain/entity"
)

// Campos que puede señalar un rechazo.
const (
	FieldMovementType = "movement_type"
	FieldQuantity     = "quantity"
	FieldProduct      = "product"
)

// MaxQuantity es la mayor magnitud que admite la columna quantity (INTEGER).
const MaxQuantity = math.MaxInt32

// Proposal es un movimiento propuesto tal como llega del caller; los campos pueden faltar.
type Proposal struct {
	ProductID string
	Type      string
	Quantity  *decimal.Decimal
	Reason    string
}

// ProductSnapshot es el estado del producto leído antes de decidir.
type ProductSnapshot struct {
	ID            string
	SKU           string
	StockQuantity int
	MinimumStock  int
}

// Accepted es un movimiento admitido y totalmente especificado.
type Accepted struct {
	ProductID string
	Type      string
	Quantity  int // magnitud
	Delta     int // cambio con signo a aplicar al saldo
	Reason    string
	UserID    string
}

// Evaluate decide si la propuesta es admisible sobre el snapshot dado. No tiene efectos.
// product es nil cuando la referencia no existe o no se envió.
//
// La restricción de rol se evalúa primero y también sobre propuestas incompletas,
// para que un rol de solo entradas reciba siempre el mismo mensaje.
func Evaluate(p Proposal, product *ProductSnapshot, actor Actor) (*Accepted, *domain.Rejection) {
	movementType := strings.ToUpper(strings.TrimSpace(p.Type))

	if movementType != "" && !CanRegister(actor, movementType) {
		if InboundOnly(actor) || entity.IsValidMovementType(movementType) {
			return nil, roleRejection(actor)
		}
	}

	switch {
	case movementType == "":
		return nil, domain.Reject(FieldMovementType, domain.CodeRequired, "movement type is required")
	case p.Quantity == nil:
		return nil, domain.Reject(FieldQuantity, domain.CodeRequired, "quantity is required")
	case strings.TrimSpace(p.ProductID) == "":
		return nil, domain.Reject(FieldProduct, domain.CodeRequired, "product is required")
	}

	if !entity.IsValidMovementType(movementType) {
		return nil, domain.Reject(FieldMovementType, domain.CodeInvalidType, "unknown movement type %q", p.Type)
	}
	if product == nil {
		return nil, domain.Reject(FieldProduct, domain.CodeNotFound, "product %s does not exist", p.ProductID)
	}

	qty, rej := checkQuantity(movementType, *p.Quantity)
	if rej != nil {
		return nil, rej
	}

	if movementType == entity.MovementTypeOUT && qty > product.StockQuantity {
		return nil, domain.Reject(FieldQuantity, domain.CodeInsufficientStock,
			"insufficient stock, available=%d", product.StockQuantity)
	}
	if delta := SignedDelta(movementType, qty); delta > 0 && int64(product.StockQuantity)+int64(delta) > MaxQuantity {
		return nil, domain.Reject(FieldQuantity, domain.CodeInvalidQuantity,
			"resulting stock must not exceed %d, current=%d", MaxQuantity, product.StockQuantity)
	}

	return &Accepted{
		ProductID: product.ID,
		Type:      movementType,
		Quantity:  Magnitude(qty),
		Delta:     SignedDelta(movementType, qty),
		Reason:    strings.TrimSpace(p.Reason),
		UserID:    actor.UserID,
	}, nil
}

// checkQuantity valida la cantidad según el tipo y la devuelve como entero con signo.
func checkQuantity(movementType string, q decimal.Decimal) (int, *domain.Rejection) {
	if !q.IsInteger() {
		return 0, domain.Reject(FieldQuantity, domain.CodeInvalidQuantity, "quantity must be an integer")
	}
	if q.Abs().GreaterThan(decimal.NewFromInt(MaxQuantity)) {
		return 0, domain.Reject(FieldQuantity, domain.CodeInvalidQuantity, "quantity must not exceed %d", MaxQuantity)
	}
	n := int(q.IntPart())
	if movementType == entity.MovementTypeADJ {
		if n == 0 {
			return 0, domain.Reject(FieldQuantity, domain.CodeInvalidQuantity, "adjustment must not be zero")
		}
		return n, nil
	}
	if n <= 0 {
		return 0, domain.Reject(FieldQuantity, domain.CodeInvalidQuantity, "quantity must be a positive integer")
	}
	return n, nil
}

func roleRejection(actor Actor) *domain.Rejection {
	if InboundOnly(actor) {
		return domain.Reject(FieldMovementType, domain.CodeRoleForbidden,
			"role %s may only register %s movements", actor.Role, entity.MovementTypeIN)
	}
	return domain.Reject(FieldMovementType, domain.CodeRoleForbidden,
		"role %q may not register movements", actor.Role)
}
