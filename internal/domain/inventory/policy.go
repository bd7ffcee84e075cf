package inventory

import "github.com/jhoicas/sistock-api/internal/domain/entity"

// Actor es quien propone un movimiento, ya clasificado por el subsistema de identidad.
type Actor struct {
	UserID      string
	Role        string
	IsSuperuser bool
}

var roleMovementTypes = map[string][]string{
	entity.RoleAdmin:   {entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeADJ},
	entity.RoleManager: {entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeADJ},
	entity.RoleStaff:   {entity.MovementTypeIN},
}

// AllowedMovementTypes devuelve los tipos de movimiento que el actor puede registrar.
// Un superusuario no tiene restricciones; un rol desconocido no puede registrar nada.
func AllowedMovementTypes(a Actor) []string {
	if a.IsSuperuser {
		return entity.MovementTypes
	}
	return roleMovementTypes[a.Role]
}

// CanRegister indica si el actor puede registrar movimientos del tipo t.
func CanRegister(a Actor, t string) bool {
	for _, allowed := range AllowedMovementTypes(a) {
		if allowed == t {
			return true
		}
	}
	return false
}

// InboundOnly indica si el actor solo puede registrar entradas.
func InboundOnly(a Actor) bool {
	allowed := AllowedMovementTypes(a)
	return len(allowed) == 1 && allowed[0] == entity.MovementTypeIN
}
