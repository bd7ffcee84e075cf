package entity

import "time"

// Category agrupa productos del catálogo. No puede eliminarse mientras tenga productos.
type Category struct {
	ID          string
	Name        string // único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
