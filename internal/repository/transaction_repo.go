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

type TransactionRepository interface {
	FindAll(ctx context.Context) ([]model.Transaction, error)
	FindByID(ctx context.Context, id string) (*model.Transaction, error)
	// FindByToken resolves a transaction by its download token, the only
	// valid lookup key from the redemption entry point.
	FindByToken(ctx context.Context, token string) (*model.Transaction, error)
	Create(ctx context.Context, trx *model.Transaction) error
	Patch(ctx context.Context, id string, fields map[string]any) error
}

type transactionRepo struct {
	backend store.Backend
}

func NewTransactionRepo(backend store.Backend) TransactionRepository {
	return &transactionRepo{backend}
}

func (r *transactionRepo) FindAll(ctx context.Context) ([]model.Transaction, error) {
	docs, err := r.backend.List(ctx, store.CollectionTransactions)
	if err != nil {
		return nil, err
	}
	trxs := make([]model.Transaction, 0, len(docs))
	for _, doc := range docs {
		var t model.Transaction
		if err := json.Unmarshal(doc, &t); err != nil {
			return nil, fmt.Errorf("decode transaction: %w", err)
		}
		trxs = append(trxs, t)
	}
	sort.SliceStable(trxs, func(i, j int) bool {
		return trxs[i].CreatedAt.After(trxs[j].CreatedAt)
	})
	return trxs, nil
}

func (r *transactionRepo) FindByID(ctx context.Context, id string) (*model.Transaction, error) {
	doc, err := r.backend.Get(ctx, store.CollectionTransactions, id)
	if err != nil {
		return nil, err
	}
	var t model.Transaction
	if err := json.Unmarshal(doc, &t); err != nil {
		return nil, fmt.Errorf("decode transaction %s: %w", id, err)
	}
	return &t, nil
}

func (r *transactionRepo) FindByToken(ctx context.Context, token string) (*model.Transaction, error) {
	docs, err := r.backend.Query(ctx, store.CollectionTransactions, "downloadToken", token)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, store.ErrNotFound
	}
	var t model.Transaction
	if err := json.Unmarshal(docs[0], &t); err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	return &t, nil
}

func (r *transactionRepo) Create(ctx context.Context, trx *model.Transaction) error {
	trx.ID = newID("trx")
	trx.CreatedAt = time.Now().UTC()
	return r.backend.Put(ctx, store.CollectionTransactions, trx.ID, trx)
}

func (r *transactionRepo) Patch(ctx context.Context, id string, fields map[string]any) error {
	stripProtected(fields)
	// The token is minted exactly once at creation; no later write may
	// replace it.
	delete(fields, "downloadToken")
	if len(fields) == 0 {
		return nil
	}
	return r.backend.Patch(ctx, store.CollectionTransactions, id, fields)
}
