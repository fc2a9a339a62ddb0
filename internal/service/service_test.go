package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"go-storefront-ws/internal/bus"
	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/repository"
	"go-storefront-ws/internal/service"
	"go-storefront-ws/internal/store"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// env bundles fully wired services over a throwaway local store, each
// test with its own bus instance.
type env struct {
	backend  store.Backend
	changes  *bus.Bus
	catalog  service.CatalogService
	payment  service.PaymentService
	reviews  service.ReviewService
	settings service.SettingsService
	stats    service.DashboardService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "svc.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	backend, err := store.NewLocalStore(db)
	require.NoError(t, err)

	changes := bus.New()
	productRepo := repository.NewProductRepo(backend)
	trxRepo := repository.NewTransactionRepo(backend)
	reviewRepo := repository.NewReviewRepo(backend)
	settingsRepo := repository.NewSettingsRepo(backend)

	return &env{
		backend:  backend,
		changes:  changes,
		catalog:  service.NewCatalogService(productRepo, changes),
		payment:  service.NewPaymentService(trxRepo, productRepo, changes),
		reviews:  service.NewReviewService(reviewRepo, productRepo, changes),
		settings: service.NewSettingsService(settingsRepo, changes),
		stats:    service.NewDashboardService(trxRepo, productRepo),
	}
}

func (e *env) createProduct(t *testing.T, name string, price int64) *model.Product {
	t.Helper()
	product, err := e.catalog.CreateProduct(context.Background(), &model.Product{
		Name:    name,
		Price:   price,
		FileURL: "https://files.example.com/" + name + ".zip",
	})
	require.NoError(t, err)
	return product
}

func (e *env) checkout(t *testing.T, productID string) *model.Transaction {
	t.Helper()
	trx, err := e.payment.Checkout(context.Background(), &service.CheckoutRequest{
		ProductID:     productID,
		PaymentMethod: "qris",
		CustomerEmail: "buyer@example.com",
	})
	require.NoError(t, err)
	return trx
}
