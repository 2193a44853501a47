package catalog

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. El update de artículo y el toque de auditoría de sus registros de
// stock deben confirmar o abortar juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		articles repository.ArticleRepository,
		stock repository.StockRepository,
	) error) error
}
