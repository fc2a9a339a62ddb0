package service

import (
	"context"
	"errors"
	"fmt"

	"go-storefront-ws/internal/bus"
	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/repository"
	"go-storefront-ws/internal/store"
	"go-storefront-ws/pkg/validator"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, fields map[string]any) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type catalogService struct {
	products repository.ProductRepository
	changes  *bus.Bus
}

func NewCatalogService(products repository.ProductRepository, changes *bus.Bus) CatalogService {
	return &catalogService{
		products: products,
		changes:  changes,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *catalogService) CreateProduct(ctx context.Context, req *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	if err := s.products.Create(ctx, req); err != nil {
		return nil, err
	}

	s.changes.Publish(store.CollectionProducts)
	return req, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, fields map[string]any) (*model.Product, error) {
	// The rating cache belongs to review aggregation; admin edits may
	// not touch it.
	delete(fields, "averageRating")
	delete(fields, "totalReviews")

	product, err := s.products.Update(ctx, id, fields)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	s.changes.Publish(store.CollectionProducts)
	return product, nil
}

// DeleteProduct is an unconditional hard delete. The caller confirms;
// here it is final. Transactions and reviews keep their dangling
// product references.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.changes.Publish(store.CollectionProducts)
	return nil
}
