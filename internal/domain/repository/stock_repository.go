package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// StockRepository define el puerto para el libro de stock por artículo+ubicación.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// Create persiste el registro y asigna ID; domain.ErrDuplicate si el par
	// (article_id, location) ya está ocupado.
	Create(record *entity.StockRecord) error
	GetByID(id int64) (*entity.StockRecord, error)
	// GetDetailByID devuelve el registro unido con artículo y nombre del modificador.
	GetDetailByID(id int64) (*entity.StockRecordDetail, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene sentido dentro de una tx.
	GetForUpdate(id int64) (*entity.StockRecord, error)
	GetByArticleAndLocation(articleID int64, location string) (*entity.StockRecord, error)
	// Update escribe cantidad y campos de auditoría; devuelve false si la fila no existe.
	Update(record *entity.StockRecord) (bool, error)
	Delete(id int64) (bool, error)
	// TouchByArticle re-estampa last_modified_by/at de todos los registros del artículo
	// (la actualización del artículo padre cuenta como toque auditado de su stock).
	TouchByArticle(articleID, userID int64, at time.Time) error

	ListAll() ([]*entity.StockRecordDetail, error)
	ListByArticle(articleID int64) ([]*entity.StockRecordDetail, error)
	ListByLocation(location string) ([]*entity.StockRecordDetail, error)
}
