package repository_test

import (
	"path/filepath"
	"testing"

	"go-storefront-ws/internal/store"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBackend(t *testing.T) store.Backend {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "repo.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	backend, err := store.NewLocalStore(db)
	require.NoError(t, err)
	return backend
}
