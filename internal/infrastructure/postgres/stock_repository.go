package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador del libro de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const recordColumns = `id, article_id, quantity, location, last_modified_by, last_modified_at`

// detailQuery une el registro con su artículo y el nombre del último modificador.
// LEFT JOIN a users: si el usuario fue eliminado el FK queda NULL y el nombre
// simplemente no viene (best-effort).
const detailQuery = `
	SELECT s.id, s.article_id, s.quantity, s.location, s.last_modified_by, s.last_modified_at,
	       a.sku, a.name, u.display_name
	FROM stock_records s
	JOIN articles a ON a.id = s.article_id
	LEFT JOIN users u ON u.id = s.last_modified_by`

// Create persiste un nuevo registro y asigna el ID generado.
// domain.ErrDuplicate si (article_id, location) ya está ocupado.
func (r *StockRepo) Create(record *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (article_id, quantity, location, last_modified_by, last_modified_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		record.ArticleID, record.Quantity, record.Location, record.LastModifiedBy, record.LastModifiedAt,
	).Scan(&record.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *StockRepo) GetByID(id int64) (*entity.StockRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM stock_records WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
// Dentro de una tx, serializa los ajustes concurrentes sobre el mismo registro.
func (r *StockRepo) GetForUpdate(id int64) (*entity.StockRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM stock_records WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByArticleAndLocation obtiene el registro del par único (artículo, ubicación).
func (r *StockRepo) GetByArticleAndLocation(articleID int64, location string) (*entity.StockRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM stock_records WHERE article_id = $1 AND location = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, articleID, location))
}

// GetDetailByID obtiene el registro unido con artículo y nombre del modificador.
func (r *StockRepo) GetDetailByID(id int64) (*entity.StockRecordDetail, error) {
	row := r.q.QueryRow(context.Background(), detailQuery+` WHERE s.id = $1`, id)
	var d entity.StockRecordDetail
	err := row.Scan(&d.ID, &d.ArticleID, &d.Quantity, &d.Location, &d.LastModifiedBy, &d.LastModifiedAt,
		&d.ArticleSKU, &d.ArticleName, &d.ModifiedByName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock record detail: %w", err)
	}
	return &d, nil
}

// Update escribe cantidad y auditoría. Devuelve false si la fila no existe.
func (r *StockRepo) Update(record *entity.StockRecord) (bool, error) {
	query := `
		UPDATE stock_records
		SET quantity = $2, last_modified_by = $3, last_modified_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		record.ID, record.Quantity, record.LastModifiedBy, record.LastModifiedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update stock record: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un registro. No toca el artículo padre ni otros registros.
func (r *StockRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_records WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete stock record: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// TouchByArticle re-estampa la auditoría de todos los registros del artículo.
func (r *StockRepo) TouchByArticle(articleID, userID int64, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_records SET last_modified_by = $2, last_modified_at = $3 WHERE article_id = $1`,
		articleID, userID, at,
	)
	if err != nil {
		return fmt.Errorf("touch stock records: %w", err)
	}
	return nil
}

// ListAll devuelve todos los registros con sus joins.
func (r *StockRepo) ListAll() ([]*entity.StockRecordDetail, error) {
	return r.listDetail(detailQuery + ` ORDER BY s.id`)
}

// ListByArticle devuelve los registros de un artículo.
func (r *StockRepo) ListByArticle(articleID int64) ([]*entity.StockRecordDetail, error) {
	return r.listDetail(detailQuery+` WHERE s.article_id = $1 ORDER BY s.id`, articleID)
}

// ListByLocation devuelve los registros de una ubicación.
func (r *StockRepo) ListByLocation(location string) ([]*entity.StockRecordDetail, error) {
	return r.listDetail(detailQuery+` WHERE s.location = $1 ORDER BY s.id`, location)
}

func (r *StockRepo) listDetail(query string, args ...any) ([]*entity.StockRecordDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock records: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockRecordDetail
	for rows.Next() {
		var d entity.StockRecordDetail
		if err := rows.Scan(&d.ID, &d.ArticleID, &d.Quantity, &d.Location, &d.LastModifiedBy, &d.LastModifiedAt,
			&d.ArticleSKU, &d.ArticleName, &d.ModifiedByName); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *StockRepo) scanOne(row pgx.Row) (*entity.StockRecord, error) {
	var s entity.StockRecord
	err := row.Scan(&s.ID, &s.ArticleID, &s.Quantity, &s.Location, &s.LastModifiedBy, &s.LastModifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock record: %w", err)
	}
	return &s, nil
}
