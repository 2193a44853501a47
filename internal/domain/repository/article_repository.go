package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ArticleRepository define el puerto de persistencia para Article.
// Los Get* devuelven (nil, nil) cuando el artículo no existe.
type ArticleRepository interface {
	// Create persiste el artículo y asigna ID; domain.ErrDuplicate si el SKU ya existe.
	Create(article *entity.Article) error
	GetByID(id int64) (*entity.Article, error)
	GetBySKU(sku string) (*entity.Article, error)
	// List filtra por texto libre (nombre, sku, descripción, case-insensitive) y por
	// categoría (substring de la descripción). Cadenas vacías no filtran.
	List(q, category string) ([]*entity.Article, error)
	// Update escribe todos los campos; devuelve false si la fila ya no existe
	// (el caller decide si reintentar como chequeo de existencia).
	Update(article *entity.Article) (bool, error)
	// Delete devuelve false si la fila no existía. El schema cascadea a stock_records.
	Delete(id int64) (bool, error)
}
