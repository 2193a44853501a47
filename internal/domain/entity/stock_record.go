package entity

import "time"

// StockRecord es la unidad de verdad del inventario: cantidad de un artículo en una
// ubicación. El par (ArticleID, Location) es único; Location vacío significa "sin
// ubicación" y también participa del índice único.
//
// Quantity es entero con signo: crear y sobreescribir (Set) aceptan negativos, solo
// el ajuste (delta) impone el piso en cero.
type StockRecord struct {
	ID             int64
	ArticleID      int64
	Quantity       int64
	Location       string // máx 50, vacío = sin ubicación
	LastModifiedBy *int64 // FK a users, NULL si el usuario fue eliminado
	LastModifiedAt time.Time
}

// StockRecordDetail es un registro de stock unido con su artículo y el nombre del
// último usuario modificador (nil si ese usuario ya no existe).
type StockRecordDetail struct {
	StockRecord
	ArticleSKU     string
	ArticleName    string
	ModifiedByName *string
}
