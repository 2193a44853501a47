package stock

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

const maxLocationLen = 50

// UseCase es el motor de mutación de stock: create/set/adjust/delete sobre
// registros (artículo, ubicación) más los listados de consulta.
//
// Invariante asimétrico y deliberado: Create y Set aceptan cantidades negativas
// (escrituras autoritativas), solo Adjust impone el piso en cero porque aplica un
// delta sobre un libro vivo. No "arreglar" Set para que también haga piso.
type UseCase struct {
	articles repository.ArticleRepository
	stock    repository.StockRepository
	txRunner TxRunner
}

// NewUseCase construye el motor de stock.
func NewUseCase(articles repository.ArticleRepository, stock repository.StockRepository, txRunner TxRunner) *UseCase {
	return &UseCase{articles: articles, stock: stock, txRunner: txRunner}
}

// Create crea un registro de stock para (artículo, ubicación).
// ErrNotFound si el artículo no existe; ErrDuplicate si el par ya está ocupado.
// La cantidad se acepta tal cual, incluso negativa. Estampa auditoría con la
// identidad actuante.
func (uc *UseCase) Create(ctx context.Context, identity *auth.Identity, in dto.CreateStockRequest) (*dto.StockRecordResponse, error) {
	if len(in.Location) > maxLocationLen {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.StockRecord
	err := uc.txRunner.Run(ctx, func(articles repository.ArticleRepository, stock repository.StockRepository) error {
		article, err := articles.GetByID(in.ArticleID)
		if err != nil {
			return err
		}
		if article == nil {
			return domain.ErrNotFound
		}
		existing, err := stock.GetByArticleAndLocation(in.ArticleID, in.Location)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		userID := identity.ID
		record := &entity.StockRecord{
			ArticleID:      in.ArticleID,
			Quantity:       in.Quantity,
			Location:       in.Location,
			LastModifiedBy: &userID,
			LastModifiedAt: time.Now(),
		}
		if err := stock.Create(record); err != nil {
			return err
		}
		created = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.detailResponse(created.ID)
}

// Set sobreescribe la cantidad de un registro de forma autoritativa (sin piso,
// negativos incluidos) y re-estampa auditoría. ErrNotFound si el registro no existe.
func (uc *UseCase) Set(ctx context.Context, identity *auth.Identity, id int64, in dto.SetQuantityRequest) error {
	return uc.txRunner.Run(ctx, func(_ repository.ArticleRepository, stock repository.StockRepository) error {
		record, err := stock.GetForUpdate(id)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		userID := identity.ID
		record.Quantity = in.Quantity
		record.LastModifiedBy = &userID
		record.LastModifiedAt = time.Now()
		ok, err := stock.Update(record)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Adjust aplica un delta a la cantidad de un registro. Único camino donde se
// impone la no-negatividad: si current+delta < 0 se rechaza con
// InsufficientStockError (con diagnóstico) y el registro queda intacto.
//
// La fila se bloquea (SELECT FOR UPDATE) dentro de la transacción: dos ajustes
// concurrentes no pueden pasar el chequeo contra una cantidad ya obsoleta.
func (uc *UseCase) Adjust(ctx context.Context, identity *auth.Identity, id int64, in dto.AdjustRequest) (*dto.AdjustResponse, error) {
	var out *dto.AdjustResponse
	err := uc.txRunner.Run(ctx, func(_ repository.ArticleRepository, stock repository.StockRepository) error {
		record, err := stock.GetForUpdate(id)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		newQuantity := record.Quantity + in.Delta
		if newQuantity < 0 {
			return &domain.InsufficientStockError{Current: record.Quantity, Requested: in.Delta}
		}
		userID := identity.ID
		record.Quantity = newQuantity
		record.LastModifiedBy = &userID
		record.LastModifiedAt = time.Now()
		ok, err := stock.Update(record)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		out = &dto.AdjustResponse{Message: "inventario ajustado", Quantity: newQuantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un registro sin tocar el artículo padre ni los demás registros.
// ErrNotFound si el id no existe.
func (uc *UseCase) Delete(id int64) error {
	ok, err := uc.stock.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll devuelve todos los registros con artículo y nombre del modificador.
func (uc *UseCase) ListAll() ([]dto.StockRecordResponse, error) {
	records, err := uc.stock.ListAll()
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// ListByArticle devuelve los registros de un artículo. ErrNotFound si el artículo no existe.
func (uc *UseCase) ListByArticle(articleID int64) ([]dto.StockRecordResponse, error) {
	article, err := uc.articles.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	records, err := uc.stock.ListByArticle(articleID)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// ListByLocation devuelve los registros de una ubicación.
func (uc *UseCase) ListByLocation(location string) ([]dto.StockRecordResponse, error) {
	records, err := uc.stock.ListByLocation(location)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// detailResponse relee el registro con sus joins para la respuesta de creación.
func (uc *UseCase) detailResponse(id int64) (*dto.StockRecordResponse, error) {
	detail, err := uc.stock.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(detail)
	return &resp, nil
}

func toResponse(r *entity.StockRecordDetail) dto.StockRecordResponse {
	return dto.StockRecordResponse{
		ID:             r.ID,
		ArticleID:      r.ArticleID,
		ArticleSKU:     r.ArticleSKU,
		ArticleName:    r.ArticleName,
		Quantity:       r.Quantity,
		Location:       r.Location,
		LastModifiedBy: r.LastModifiedBy,
		ModifiedByName: r.ModifiedByName,
		LastModifiedAt: r.LastModifiedAt,
	}
}

func toResponses(records []*entity.StockRecordDetail) []dto.StockRecordResponse {
	out := make([]dto.StockRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r))
	}
	return out
}
