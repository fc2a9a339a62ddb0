package service_test

import (
	"context"
	"strings"
	"testing"

	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutStartsPendingWithToken(t *testing.T) {
	e := newEnv(t)
	product := e.createProduct(t, "kit", 100000)

	trx := e.checkout(t, product.ID)

	assert.Equal(t, model.StatusPending, trx.Status)
	assert.Equal(t, product.Name, trx.ProductName)
	assert.Equal(t, product.Price, trx.Amount)
	assert.True(t, strings.HasPrefix(trx.DownloadToken, "token_"))
	assert.Empty(t, trx.Resi)
}

func TestCheckoutUnknownProduct(t *testing.T) {
	e := newEnv(t)

	_, err := e.payment.Checkout(context.Background(), &service.CheckoutRequest{
		ProductID:     "prod_ghost",
		PaymentMethod: "qris",
	})
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestCheckoutValidatesInput(t *testing.T) {
	e := newEnv(t)

	_, err := e.payment.Checkout(context.Background(), &service.CheckoutRequest{
		PaymentMethod: "qris",
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = e.payment.Checkout(context.Background(), &service.CheckoutRequest{
		ProductID:     "prod_x",
		PaymentMethod: "qris",
		CustomerEmail: "not-an-email",
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestDownloadTokensAreUnique(t *testing.T) {
	e := newEnv(t)
	product := e.createProduct(t, "kit", 100000)

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		trx := e.checkout(t, product.ID)
		assert.False(t, seen[trx.DownloadToken], "duplicate token %s", trx.DownloadToken)
		seen[trx.DownloadToken] = true
	}
}

func TestTokenSurvivesStatusChanges(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	product := e.createProduct(t, "kit", 100000)
	trx := e.checkout(t, product.ID)
	minted := trx.DownloadToken

	_, err := e.payment.UploadProof(ctx, trx.ID, "data:image/png;base64,AAAA")
	require.NoError(t, err)
	updated, err := e.payment.UpdateStatus(ctx, trx.ID, model.StatusSuccess)
	require.NoError(t, err)

	assert.Equal(t, minted, updated.DownloadToken)
}

func TestUploadProofMovesToWaitingVerification(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	product := e.createProduct(t, "kit", 100000)
	trx := e.checkout(t, product.ID)

	updated, err := e.payment.UploadProof(ctx, trx.ID, "proof-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusWaitingVerification, updated.Status)
	assert.Equal(t, "proof-1", updated.ProofImageURL)

	// Re-upload replaces the proof and keeps the status.
	updated, err = e.payment.UploadProof(ctx, trx.ID, "proof-2")
	require.NoError(t, err)
	assert.Equal(t, model.StatusWaitingVerification, updated.Status)
	assert.Equal(t, "proof-2", updated.ProofImageURL)
}

func TestUploadProofUnknownTransaction(t *testing.T) {
	e := newEnv(t)

	_, err := e.payment.UploadProof(context.Background(), "trx_ghost", "proof")
	assert.ErrorIs(t, err, service.ErrTransactionNotFound)
}

func TestAdminDecisionHasNoStateGuard(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	product := e.createProduct(t, "kit", 100000)
	trx := e.checkout(t, product.ID)

	// Deciding straight from pending is allowed.
	updated, err := e.payment.UpdateStatus(ctx, trx.ID, model.StatusFailed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, updated.Status)

	// So is overriding an earlier decision.
	updated, err = e.payment.UpdateStatus(ctx, trx.ID, model.StatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, updated.Status)
}

func TestAdminDecisionRejectsNonTerminalTargets(t *testing.T) {
	e := newEnv(t)
	product := e.createProduct(t, "kit", 100000)
	trx := e.checkout(t, product.ID)

	_, err := e.payment.UpdateStatus(context.Background(), trx.ID, model.StatusPending)
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestUpdateResiIsStatusFree(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	product := e.createProduct(t, "kit", 100000)
	trx := e.checkout(t, product.ID)

	updated, err := e.payment.UpdateResi(ctx, trx.ID, "LIC-2024-0001")
	require.NoError(t, err)
	assert.Equal(t, "LIC-2024-0001", updated.Resi)
	assert.Equal(t, model.StatusPending, updated.Status)
}

func TestVerifyDownloadTokenGating(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	product := e.createProduct(t, "kit", 100000)
	trx := e.checkout(t, product.ID)

	// Unknown token and unverified payment fail differently.
	_, err := e.payment.VerifyDownloadToken(ctx, "token_nonexistent")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = e.payment.VerifyDownloadToken(ctx, trx.DownloadToken)
	assert.ErrorIs(t, err, service.ErrPaymentNotVerified)

	_, err = e.payment.UploadProof(ctx, trx.ID, "proof")
	require.NoError(t, err)
	_, err = e.payment.VerifyDownloadToken(ctx, trx.DownloadToken)
	assert.ErrorIs(t, err, service.ErrPaymentNotVerified)

	_, err = e.payment.UpdateStatus(ctx, trx.ID, model.StatusSuccess)
	require.NoError(t, err)

	grant, err := e.payment.VerifyDownloadToken(ctx, trx.DownloadToken)
	require.NoError(t, err)
	assert.Equal(t, product.FileURL, grant.URL)
	assert.Equal(t, product.Name, grant.Product)
	assert.Equal(t, trx.ID, grant.Transaction.ID)

	// Idempotent: a second redemption behaves identically.
	again, err := e.payment.VerifyDownloadToken(ctx, trx.DownloadToken)
	require.NoError(t, err)
	assert.Equal(t, grant.URL, again.URL)
}

func TestVerifyDownloadTokenProductDeleted(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	product := e.createProduct(t, "kit", 100000)
	trx := e.checkout(t, product.ID)

	_, err := e.payment.UpdateStatus(ctx, trx.ID, model.StatusSuccess)
	require.NoError(t, err)
	require.NoError(t, e.catalog.DeleteProduct(ctx, product.ID))

	// The dangling reference is tolerated on the transaction itself...
	got, err := e.payment.GetTransaction(ctx, trx.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ProductID)

	// ...but redemption can no longer resolve the file.
	_, err = e.payment.VerifyDownloadToken(ctx, trx.DownloadToken)
	assert.ErrorIs(t, err, service.ErrProductGone)
}

func TestMutationsPublishOnBus(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	var events []string
	e.changes.Subscribe(func(collection string) { events = append(events, collection) })

	product := e.createProduct(t, "kit", 100000)
	trx := e.checkout(t, product.ID)
	_, err := e.payment.UploadProof(ctx, trx.ID, "proof")
	require.NoError(t, err)

	assert.Equal(t, []string{"products", "transactions", "transactions"}, events)
}
