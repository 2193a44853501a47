package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/almacen-api/internal/application/catalog"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner satisface los puertos de transacción de catálogo y stock.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o
// Rollback. Los SELECT FOR UPDATE de los repos solo bloquean dentro de este ámbito.
func (r *TxRunner) Run(ctx context.Context, fn func(
	articles repository.ArticleRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	articles := NewArticleRepository(tx)
	stockRepo := NewStockRepository(tx)

	if err := fn(articles, stockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
