package dto

import "time"

// CreateStockRequest entrada para crear un registro de stock.
// Quantity acepta negativos: la creación es una escritura autoritativa.
type CreateStockRequest struct {
	ArticleID int64  `json:"article_id" validate:"required"`
	Quantity  int64  `json:"quantity"`
	Location  string `json:"location" validate:"omitempty,max=50"`
}

// SetQuantityRequest entrada para sobreescribir la cantidad de un registro.
// Sin piso en cero: el caller es autoritativo.
type SetQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// AdjustRequest entrada para ajustar inventario: positivo entrada, negativo salida.
type AdjustRequest struct {
	Delta int64 `json:"delta"`
}

// AdjustResponse salida de un ajuste aplicado.
type AdjustResponse struct {
	Message  string `json:"message"`
	Quantity int64  `json:"quantity"`
}

// StockRecordResponse salida de un registro de stock.
// ModifiedByName es best-effort: null si el usuario modificador fue eliminado.
type StockRecordResponse struct {
	ID             int64     `json:"id"`
	ArticleID      int64     `json:"article_id"`
	ArticleSKU     string    `json:"article_sku,omitempty"`
	ArticleName    string    `json:"article_name,omitempty"`
	Quantity       int64     `json:"quantity"`
	Location       string    `json:"location,omitempty"`
	LastModifiedBy *int64    `json:"last_modified_by"`
	ModifiedByName *string   `json:"modified_by_name,omitempty"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}
