package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación del puerto ArticleRepository sobre PostgreSQL (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un nuevo artículo y asigna el ID generado.
func (r *ArticleRepo) Create(article *entity.Article) error {
	query := `
		INSERT INTO articles (sku, name, description, cost_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		article.SKU, article.Name, article.Description, article.CostPrice,
	).Scan(&article.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID (sin registros de stock).
func (r *ArticleRepo) GetByID(id int64) (*entity.Article, error) {
	query := `
		SELECT id, sku, name, description, cost_price
		FROM articles WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un artículo por su SKU único.
func (r *ArticleRepo) GetBySKU(sku string) (*entity.Article, error) {
	query := `
		SELECT id, sku, name, description, cost_price
		FROM articles WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// List filtra por texto libre (ILIKE sobre nombre, sku y descripción) y por
// categoría (substring de la descripción). Cadenas vacías no filtran.
func (r *ArticleRepo) List(q, category string) ([]*entity.Article, error) {
	query := `
		SELECT id, sku, name, description, cost_price
		FROM articles
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR description LIKE '%' || $2 || '%')
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, q, category)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.SKU, &a.Name, &a.Description, &a.CostPrice); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update escribe todos los campos del artículo. Devuelve false si la fila ya no
// existe (borrado concurrente): el caller decide el reintento.
func (r *ArticleRepo) Update(article *entity.Article) (bool, error) {
	query := `
		UPDATE articles SET sku = $2, name = $3, description = $4, cost_price = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		article.ID, article.SKU, article.Name, article.Description, article.CostPrice,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update article: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un artículo; el schema cascadea sus registros de stock.
func (r *ArticleRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *ArticleRepo) scanOne(row pgx.Row) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(&a.ID, &a.SKU, &a.Name, &a.Description, &a.CostPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}
