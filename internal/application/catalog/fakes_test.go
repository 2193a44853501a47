package catalog_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// repositorios de postgres: Get* devuelven (nil, nil) si no hay fila, Create
// asigna ID y detecta duplicados, Update/Delete devuelven false sin fila.

type fakeArticleRepo struct {
	mu       sync.Mutex
	articles map[int64]*entity.Article
	nextID   int64
	failNext bool // el siguiente Update devuelve false (fila "desaparecida")
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[int64]*entity.Article), nextID: 1}
}

func (r *fakeArticleRepo) Create(article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.articles {
		if a.SKU == article.SKU {
			return domain.ErrDuplicate
		}
	}
	article.ID = r.nextID
	r.nextID++
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) GetByID(id int64) (*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeArticleRepo) GetBySKU(sku string) (*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.articles {
		if a.SKU == sku {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeArticleRepo) List(q, category string) ([]*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Article, 0, len(r.articles))
	lq := strings.ToLower(q)
	for _, a := range r.articles {
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Name), lq) &&
			!strings.Contains(strings.ToLower(a.SKU), lq) &&
			!strings.Contains(strings.ToLower(a.Description), lq) {
			continue
		}
		if category != "" && !strings.Contains(a.Description, category) {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeArticleRepo) Update(article *entity.Article) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return false, nil
	}
	if _, ok := r.articles[article.ID]; !ok {
		return false, nil
	}
	cp := *article
	r.articles[article.ID] = &cp
	return true, nil
}

func (r *fakeArticleRepo) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.articles[id]; !ok {
		return false, nil
	}
	delete(r.articles, id)
	return true, nil
}

type fakeStockRepo struct {
	mu       sync.Mutex
	records  map[int64]*entity.StockRecord
	nextID   int64
	articles *fakeArticleRepo
}

func newFakeStockRepo(articles *fakeArticleRepo) *fakeStockRepo {
	return &fakeStockRepo{records: make(map[int64]*entity.StockRecord), nextID: 1, articles: articles}
}

func (r *fakeStockRepo) Create(record *entity.StockRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ArticleID == record.ArticleID && rec.Location == record.Location {
			return domain.ErrDuplicate
		}
	}
	record.ID = r.nextID
	r.nextID++
	cp := *record
	r.records[record.ID] = &cp
	return nil
}

func (r *fakeStockRepo) GetByID(id int64) (*entity.StockRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeStockRepo) GetDetailByID(id int64) (*entity.StockRecordDetail, error) {
	rec, err := r.GetByID(id)
	if err != nil || rec == nil {
		return nil, err
	}
	return r.toDetail(rec), nil
}

func (r *fakeStockRepo) GetForUpdate(id int64) (*entity.StockRecord, error) {
	return r.GetByID(id)
}

func (r *fakeStockRepo) GetByArticleAndLocation(articleID int64, location string) (*entity.StockRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ArticleID == articleID && rec.Location == location {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) Update(record *entity.StockRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return false, nil
	}
	cp := *record
	r.records[record.ID] = &cp
	return true, nil
}

func (r *fakeStockRepo) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func (r *fakeStockRepo) TouchByArticle(articleID, userID int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ArticleID == articleID {
			uid := userID
			rec.LastModifiedBy = &uid
			rec.LastModifiedAt = at
		}
	}
	return nil
}

func (r *fakeStockRepo) ListAll() ([]*entity.StockRecordDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.StockRecordDetail, 0, len(r.records))
	for _, rec := range r.records {
		cp := *rec
		out = append(out, r.toDetail(&cp))
	}
	return out, nil
}

func (r *fakeStockRepo) ListByArticle(articleID int64) ([]*entity.StockRecordDetail, error) {
	all, _ := r.ListAll()
	out := make([]*entity.StockRecordDetail, 0, len(all))
	for _, d := range all {
		if d.ArticleID == articleID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListByLocation(location string) ([]*entity.StockRecordDetail, error) {
	all, _ := r.ListAll()
	out := make([]*entity.StockRecordDetail, 0, len(all))
	for _, d := range all {
		if d.Location == location {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) toDetail(rec *entity.StockRecord) *entity.StockRecordDetail {
	d := &entity.StockRecordDetail{StockRecord: *rec}
	if r.articles != nil {
		if a, _ := r.articles.GetByID(rec.ArticleID); a != nil {
			d.ArticleSKU = a.SKU
			d.ArticleName = a.Name
		}
	}
	return d
}

// fakeTxRunner serializa las "transacciones" con un mutex, emulando el bloqueo
// de fila de SELECT FOR UPDATE.
type fakeTxRunner struct {
	mu       sync.Mutex
	articles *fakeArticleRepo
	stock    *fakeStockRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	articles repository.ArticleRepository,
	stock repository.StockRepository,
) error) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return fn(tr.articles, tr.stock)
}
