package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go-storefront-ws/internal/bus"
	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/repository"
	"go-storefront-ws/internal/store"
	"go-storefront-ws/pkg/validator"
)

type AddReviewRequest struct {
	ProductID     string `json:"productId" validate:"required"`
	TransactionID string `json:"transactionId"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment"`
	UserName      string `json:"userName"`
}

type ReviewService interface {
	AddReview(ctx context.Context, req *AddReviewRequest) (*model.Review, error)
	ListProductReviews(ctx context.Context, productID string) ([]model.Review, error)
}

type reviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	changes  *bus.Bus
}

func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository, changes *bus.Bus) ReviewService {
	return &reviewService{
		reviews:  reviews,
		products: products,
		changes:  changes,
	}
}

// AddReview persists the review, then recomputes the product's rating
// cache over all of its reviews. The transaction id is stored as
// provenance only; whether that transaction ever reached success is not
// checked. If the aggregate write fails the review is kept anyway.
func (s *reviewService) AddReview(ctx context.Context, req *AddReviewRequest) (*model.Review, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	// The product must exist as the aggregate write target.
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	review := &model.Review{
		ProductID:     req.ProductID,
		TransactionID: req.TransactionID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		UserName:      req.UserName,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	s.changes.Publish(store.CollectionReviews)

	if err := s.recomputeAggregate(ctx, req.ProductID); err != nil {
		// Tolerated inconsistency: the review is saved, the cache will
		// be corrected by the next successful recompute.
		log.Printf("Warning: rating aggregate for %s not updated: %v", req.ProductID, err)
	} else {
		s.changes.Publish(store.CollectionProducts)
	}

	return review, nil
}

func (s *reviewService) ListProductReviews(ctx context.Context, productID string) ([]model.Review, error) {
	return s.reviews.FindByProduct(ctx, productID)
}

// recomputeAggregate does a full read-all-then-write, not an atomic
// increment. Single active writer per session makes that acceptable.
func (s *reviewService) recomputeAggregate(ctx context.Context, productID string) error {
	reviews, err := s.reviews.FindByProduct(ctx, productID)
	if err != nil {
		return err
	}

	total := len(reviews)
	average := 0.0
	if total > 0 {
		sum := 0
		for _, rv := range reviews {
			sum += rv.Rating
		}
		average = float64(sum) / float64(total)
	}

	_, err = s.products.Update(ctx, productID, map[string]any{
		"averageRating": average,
		"totalReviews":  total,
	})
	return err
}
