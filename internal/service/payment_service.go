package service

import (
	"context"
	"errors"
	"fmt"

	"go-storefront-ws/internal/bus"
	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/repository"
	"go-storefront-ws/internal/store"
	"go-storefront-ws/pkg/token"
	"go-storefront-ws/pkg/validator"
)

type CheckoutRequest struct {
	ProductID     string `json:"productId" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
}

// DownloadGrant is what a redeemed token unlocks: the file pointer, the
// product name for the receipt, and the transaction for downstream
// review display.
type DownloadGrant struct {
	URL         string             `json:"url"`
	Product     string             `json:"product"`
	Transaction *model.Transaction `json:"transaction"`
}

type PaymentService interface {
	Checkout(ctx context.Context, req *CheckoutRequest) (*model.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	UploadProof(ctx context.Context, id, proofImage string) (*model.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status model.TransactionStatus) (*model.Transaction, error)
	UpdateResi(ctx context.Context, id, resi string) (*model.Transaction, error)
	VerifyDownloadToken(ctx context.Context, downloadToken string) (*DownloadGrant, error)
}

type paymentService struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	changes      *bus.Bus
}

func NewPaymentService(transactions repository.TransactionRepository, products repository.ProductRepository, changes *bus.Bus) PaymentService {
	return &paymentService{
		transactions: transactions,
		products:     products,
		changes:      changes,
	}
}

// Checkout opens a purchase attempt: status pending, a fresh download
// token, and a price/name snapshot of the product. The token is minted
// here and never again, so the buyer can hold the redemption link
// before the payment is verified.
func (s *paymentService) Checkout(ctx context.Context, req *CheckoutRequest) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	trx := &model.Transaction{
		ProductID:     product.ID,
		ProductName:   product.Name,
		Amount:        product.Price,
		Status:        model.StatusPending,
		PaymentMethod: req.PaymentMethod,
		CustomerEmail: req.CustomerEmail,
		DownloadToken: token.NewDownloadToken(),
	}
	if err := s.transactions.Create(ctx, trx); err != nil {
		return nil, err
	}

	s.changes.Publish(store.CollectionTransactions)
	return trx, nil
}

func (s *paymentService) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	trx, err := s.transactions.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	return trx, err
}

func (s *paymentService) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.transactions.FindAll(ctx)
}

// UploadProof stores the payment screenshot and moves the transaction
// to waiting_verification unconditionally. Re-uploading simply replaces
// the proof; the status stays waiting_verification.
func (s *paymentService) UploadProof(ctx context.Context, id, proofImage string) (*model.Transaction, error) {
	if proofImage == "" {
		return nil, fmt.Errorf("%w: proof image is required", ErrValidation)
	}

	err := s.transactions.Patch(ctx, id, map[string]any{
		"proofImageUrl": proofImage,
		"status":        model.StatusWaitingVerification,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	s.changes.Publish(store.CollectionTransactions)
	return s.transactions.FindByID(ctx, id)
}

// UpdateStatus is the admin decision. Only success and failed are
// accepted as targets, but the current status is not guarded: the admin
// may decide a pending transaction or override an earlier decision.
func (s *paymentService) UpdateStatus(ctx context.Context, id string, status model.TransactionStatus) (*model.Transaction, error) {
	if !status.IsDecision() {
		return nil, ErrInvalidStatus
	}

	err := s.transactions.Patch(ctx, id, map[string]any{"status": status})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	s.changes.Publish(store.CollectionTransactions)
	return s.transactions.FindByID(ctx, id)
}

// UpdateResi attaches a tracking/reference code. Pure field update, no
// status effect; the UI decides when to show it.
func (s *paymentService) UpdateResi(ctx context.Context, id, resi string) (*model.Transaction, error) {
	err := s.transactions.Patch(ctx, id, map[string]any{"resi": resi})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	s.changes.Publish(store.CollectionTransactions)
	return s.transactions.FindByID(ctx, id)
}

// VerifyDownloadToken redeems a token. Read-only and safe to repeat.
// An unknown token and a known-but-unverified one fail differently so
// the buyer gets the right guidance (dead link vs. please wait).
func (s *paymentService) VerifyDownloadToken(ctx context.Context, downloadToken string) (*DownloadGrant, error) {
	trx, err := s.transactions.FindByToken(ctx, downloadToken)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}

	if trx.Status != model.StatusSuccess {
		return nil, ErrPaymentNotVerified
	}

	product, err := s.products.FindByID(ctx, trx.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductGone
	}
	if err != nil {
		return nil, err
	}

	return &DownloadGrant{
		URL:         product.FileURL,
		Product:     product.Name,
		Transaction: trx,
	}, nil
}
