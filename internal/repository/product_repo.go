package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/store"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	// Update shallow-merges fields into the stored record. Explicitly
	// passed empty values overwrite; unspecified fields are preserved.
	Update(ctx context.Context, id string, fields map[string]any) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productRepo struct {
	backend store.Backend
}

func NewProductRepo(backend store.Backend) ProductRepository {
	return &productRepo{backend}
}

func (r *productRepo) FindAll(ctx context.Context) ([]model.Product, error) {
	docs, err := r.backend.List(ctx, store.CollectionProducts)
	if err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		var p model.Product
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, p)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	doc, err := r.backend.Get(ctx, store.CollectionProducts, id)
	if err != nil {
		return nil, err
	}
	var p model.Product
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", id, err)
	}
	return &p, nil
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	product.ID = newID("prod")
	product.CreatedAt = time.Now().UTC()
	product.ApplyDefaults()
	return r.backend.Put(ctx, store.CollectionProducts, product.ID, product)
}

func (r *productRepo) Update(ctx context.Context, id string, fields map[string]any) (*model.Product, error) {
	stripProtected(fields)
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}
	if err := r.backend.Patch(ctx, store.CollectionProducts, id, fields); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Delete is unconditional and irreversible. Transactions and reviews
// referencing the product are left in place; history survives catalog
// changes.
func (r *productRepo) Delete(ctx context.Context, id string) error {
	return r.backend.Delete(ctx, store.CollectionProducts, id)
}
