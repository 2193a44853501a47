package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

const (
	maxSKULen  = 50
	maxNameLen = 150
)

// UseCase operaciones del catálogo de artículos.
type UseCase struct {
	articles repository.ArticleRepository
	stock    repository.StockRepository
	txRunner TxRunner
}

// NewUseCase construye el caso de uso del catálogo.
func NewUseCase(articles repository.ArticleRepository, stock repository.StockRepository, txRunner TxRunner) *UseCase {
	return &UseCase{articles: articles, stock: stock, txRunner: txRunner}
}

// List devuelve artículos filtrados: q busca en nombre, sku y descripción
// (case-insensitive); category se compara contra la descripción como substring.
func (uc *UseCase) List(q, category string) ([]dto.ArticleResponse, error) {
	list, err := uc.articles.List(q, category)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticleResponse(a))
	}
	return items, nil
}

// GetByID devuelve el artículo con sus registros de stock; (nil, nil) si no existe.
func (uc *UseCase) GetByID(id int64) (*dto.ArticleDetailResponse, error) {
	article, err := uc.articles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}
	records, err := uc.stock.ListByArticle(id)
	if err != nil {
		return nil, err
	}
	out := &dto.ArticleDetailResponse{
		ArticleResponse: *toArticleResponse(article),
		Records:         make([]dto.StockRecordResponse, 0, len(records)),
	}
	for _, r := range records {
		out.Records = append(out.Records, *toStockRecordResponse(r))
	}
	return out, nil
}

// Create crea un artículo. ErrDuplicate si el SKU ya existe.
func (uc *UseCase) Create(in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if in.SKU == "" || len(in.SKU) > maxSKULen || in.Name == "" || len(in.Name) > maxNameLen {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.articles.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	article := &entity.Article{
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		CostPrice:   in.CostPrice,
	}
	if err := uc.articles.Create(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// Update actualiza un artículo y, en la misma transacción, re-estampa la auditoría
// (last_modified_by/at) de todos sus registros de stock: tocar el padre cuenta como
// toque auditado del stock.
//
// ErrDuplicate si el nuevo SKU pertenece a otro artículo; ErrNotFound si el id no
// existe. Escritura optimista: si la fila desapareció entre la lectura y el UPDATE
// (borrado concurrente), se reintenta una sola vez como chequeo de existencia y se
// convierte en ErrNotFound; cualquier otro conflicto sube como error de persistencia.
func (uc *UseCase) Update(ctx context.Context, identity *auth.Identity, id int64, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	if in.SKU == "" || len(in.SKU) > maxSKULen || in.Name == "" || len(in.Name) > maxNameLen {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Article
	err := uc.txRunner.Run(ctx, func(articles repository.ArticleRepository, stock repository.StockRepository) error {
		article, err := articles.GetByID(id)
		if err != nil {
			return err
		}
		if article == nil {
			return domain.ErrNotFound
		}
		bySKU, err := articles.GetBySKU(in.SKU)
		if err != nil {
			return err
		}
		if bySKU != nil && bySKU.ID != id {
			return domain.ErrDuplicate
		}

		article.SKU = in.SKU
		article.Name = in.Name
		article.Description = in.Description
		article.CostPrice = in.CostPrice

		ok, err := articles.Update(article)
		if err != nil {
			return err
		}
		if !ok {
			// La fila ya no está: chequeo fresco de existencia, una sola vez.
			again, err := articles.GetByID(id)
			if err != nil {
				return err
			}
			if again == nil {
				return domain.ErrNotFound
			}
			// La fila existe pero el UPDATE no la vio: conflicto que no es un
			// borrado; no se reintenta en silencio.
			return fmt.Errorf("conflicto de concurrencia al actualizar artículo %d", id)
		}

		if err := stock.TouchByArticle(id, identity.ID, time.Now()); err != nil {
			return err
		}
		updated = article
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toArticleResponse(updated), nil
}

// Delete elimina el artículo; el schema cascadea sus registros de stock.
// ErrNotFound si el id no existe.
func (uc *UseCase) Delete(id int64) error {
	ok, err := uc.articles.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	if a == nil {
		return nil
	}
	return &dto.ArticleResponse{
		ID:          a.ID,
		SKU:         a.SKU,
		Name:        a.Name,
		Description: a.Description,
		CostPrice:   a.CostPrice,
	}
}

func toStockRecordResponse(r *entity.StockRecordDetail) *dto.StockRecordResponse {
	if r == nil {
		return nil
	}
	return &dto.StockRecordResponse{
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
