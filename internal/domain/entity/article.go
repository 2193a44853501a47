package entity

import "github.com/shopspring/decimal"

// Article representa un artículo del catálogo.
// CostPrice es precio de costo con dos decimales (NUMERIC(10,2), inicia en 0.00).
type Article struct {
	ID          int64
	SKU         string // único, máx 50
	Name        string // máx 150
	Description string // opcional
	CostPrice   decimal.Decimal

	// Records se carga solo en el detalle (GetByID).
	Records []*StockRecord
}
