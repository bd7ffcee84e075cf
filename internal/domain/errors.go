package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrReferentialConflict   = errors.New("el recurso está referenciado por otros registros")
	ErrCategoryNotFound      = errors.New("categoría no encontrada")
	ErrInsufficientStock     = errors.New("stock insuficiente")
)

// Códigos de rechazo del gate de validación.
const (
	CodeRequired          = "required"
	CodeNotFound          = "not_found"
	CodeInvalidType       = "invalid_type"
	CodeInvalidQuantity   = "invalid_quantity"
	CodeInsufficientStock = "insufficient_stock"
	CodeRoleForbidden     = "role_forbidden"
)

// Rejection describe por qué una propuesta de movimiento no es admisible.
// Es un resultado, no un error: el caller la muestra como error de campo y reintenta.
type Rejection struct {
	Field   string
	Code    string
	Message string
}

// Reject construye un rechazo con mensaje formateado.
func Reject(field, code, format string, args ...any) *Rejection {
	return &Rejection{Field: field, Code: code, Message: fmt.Sprintf(format, args...)}
}

func (r *Rejection) String() string {
	return r.Field + ": " + r.Message
}
