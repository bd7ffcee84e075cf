// Package migrations expone el esquema SQL embebido para las herramientas de arranque.
package migrations

import "embed"

// FS contiene los scripts *.sql en orden lexicográfico de aplicación.
//
//go:embed *.sql
var FS embed.FS
