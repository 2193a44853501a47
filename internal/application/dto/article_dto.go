package dto

import "github.com/shopspring/decimal"

// CreateArticleRequest entrada para crear un artículo.
type CreateArticleRequest struct {
	SKU         string          `json:"sku" validate:"required,max=50"`
	Name        string          `json:"name" validate:"required,max=150"`
	Description string          `json:"description" validate:"omitempty"`
	CostPrice   decimal.Decimal `json:"cost_price"`
}

// UpdateArticleRequest entrada para actualizar un artículo. El ID del body debe
// coincidir con el del path.
type UpdateArticleRequest struct {
	ID          int64           `json:"id" validate:"required"`
	SKU         string          `json:"sku" validate:"required,max=50"`
	Name        string          `json:"name" validate:"required,max=150"`
	Description string          `json:"description" validate:"omitempty"`
	CostPrice   decimal.Decimal `json:"cost_price"`
}

// ArticleResponse salida de un artículo.
type ArticleResponse struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CostPrice   decimal.Decimal `json:"cost_price"`
}

// ArticleDetailResponse artículo con sus registros de stock.
type ArticleDetailResponse struct {
	ArticleResponse
	Records []StockRecordResponse `json:"records"`
}
