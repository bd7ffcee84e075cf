package inventory

import "github.com/jhoicas/sistock-api/internal/domain/entity"

// SignedDelta traduce un movimiento aceptado al cambio con signo sobre el saldo.
// Para IN y OUT qty es la magnitud; para ADJ es el ajuste con signo.
func SignedDelta(movementType string, qty int) int {
	switch movementType {
	case entity.MovementTypeIN:
		return qty
	case entity.MovementTypeOUT:
		return -qty
	case entity.MovementTypeADJ:
		return qty
	}
	return 0
}

// ApplyFloor aplica delta al saldo sin bajar de cero.
// Es la misma regla que el UPDATE relativo ejecuta con GREATEST(..., 0).
func ApplyFloor(balance, delta int) int {
	next := balance + delta
	if next < 0 {
		return 0
	}
	return next
}

// Magnitude devuelve el valor absoluto de q.
func Magnitude(q int) int {
	if q < 0 {
		return -q
	}
	return q
}
