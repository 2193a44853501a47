package stock

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de mutación de stock: el
// read-then-write de un ajuste es una sola unidad lógica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		articles repository.ArticleRepository,
		stock repository.StockRepository,
	) error) error
}
