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

type ReviewRepository interface {
	FindByProduct(ctx context.Context, productID string) ([]model.Review, error)
	Create(ctx context.Context, review *model.Review) error
}

type reviewRepo struct {
	backend store.Backend
}

func NewReviewRepo(backend store.Backend) ReviewRepository {
	return &reviewRepo{backend}
}

func (r *reviewRepo) FindByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	docs, err := r.backend.Query(ctx, store.CollectionReviews, "productId", productID)
	if err != nil {
		return nil, err
	}
	reviews := make([]model.Review, 0, len(docs))
	for _, doc := range docs {
		var rv model.Review
		if err := json.Unmarshal(doc, &rv); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (r *reviewRepo) Create(ctx context.Context, review *model.Review) error {
	review.ID = newID("rev")
	review.CreatedAt = time.Now().UTC()
	return r.backend.Put(ctx, store.CollectionReviews, review.ID, review)
}
