package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-storefront-ws/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID    string `json:"id" firestore:"id"`
	Name  string `json:"name" firestore:"name"`
	Owner string `json:"owner" firestore:"owner"`
	Price int64  `json:"price" firestore:"price"`
}

func decodeDoc(t *testing.T, raw json.RawMessage) doc {
	t.Helper()
	var d doc
	require.NoError(t, json.Unmarshal(raw, &d))
	return d
}

// runBackendContract is the behavior both backends must share. The
// local store always runs it; the Firestore store runs it against the
// emulator when one is available.
func runBackendContract(t *testing.T, backend store.Backend) {
	ctx := context.Background()

	t.Run("get missing returns not found", func(t *testing.T) {
		_, err := backend.Get(ctx, store.CollectionProducts, "nope")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("put then get roundtrip", func(t *testing.T) {
		require.NoError(t, backend.Put(ctx, store.CollectionProducts, "p1", doc{ID: "p1", Name: "Kit", Price: 100000}))

		raw, err := backend.Get(ctx, store.CollectionProducts, "p1")
		require.NoError(t, err)
		got := decodeDoc(t, raw)
		assert.Equal(t, "Kit", got.Name)
		assert.Equal(t, int64(100000), got.Price)
	})

	t.Run("put replaces existing", func(t *testing.T) {
		require.NoError(t, backend.Put(ctx, store.CollectionProducts, "p1", doc{ID: "p1", Name: "Kit v2", Price: 150000}))

		raw, err := backend.Get(ctx, store.CollectionProducts, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Kit v2", decodeDoc(t, raw).Name)

		docs, err := backend.List(ctx, store.CollectionProducts)
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("patch merges and preserves other fields", func(t *testing.T) {
		require.NoError(t, backend.Put(ctx, store.CollectionProducts, "p2", doc{ID: "p2", Name: "Icons", Owner: "ana", Price: 50000}))
		require.NoError(t, backend.Patch(ctx, store.CollectionProducts, "p2", map[string]any{"price": 75000}))

		raw, err := backend.Get(ctx, store.CollectionProducts, "p2")
		require.NoError(t, err)
		got := decodeDoc(t, raw)
		assert.Equal(t, int64(75000), got.Price)
		assert.Equal(t, "Icons", got.Name)
		assert.Equal(t, "ana", got.Owner)
	})

	t.Run("patch missing returns not found", func(t *testing.T) {
		err := backend.Patch(ctx, store.CollectionProducts, "ghost", map[string]any{"price": 1})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("query matches field equality", func(t *testing.T) {
		require.NoError(t, backend.Put(ctx, store.CollectionReviews, "r1", doc{ID: "r1", Owner: "p2"}))
		require.NoError(t, backend.Put(ctx, store.CollectionReviews, "r2", doc{ID: "r2", Owner: "p2"}))
		require.NoError(t, backend.Put(ctx, store.CollectionReviews, "r3", doc{ID: "r3", Owner: "other"}))

		docs, err := backend.Query(ctx, store.CollectionReviews, "owner", "p2")
		require.NoError(t, err)
		assert.Len(t, docs, 2)

		docs, err = backend.Query(ctx, store.CollectionReviews, "owner", "nobody")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("delete is terminal and idempotent", func(t *testing.T) {
		require.NoError(t, backend.Put(ctx, store.CollectionProducts, "p3", doc{ID: "p3", Name: "Gone"}))
		require.NoError(t, backend.Delete(ctx, store.CollectionProducts, "p3"))

		_, err := backend.Get(ctx, store.CollectionProducts, "p3")
		assert.ErrorIs(t, err, store.ErrNotFound)

		// Deleting again is not an error.
		assert.NoError(t, backend.Delete(ctx, store.CollectionProducts, "p3"))
	})

	t.Run("settings singleton", func(t *testing.T) {
		settings := map[string]any{"instructions": "pay first", "adminPhone": "0812"}
		require.NoError(t, backend.Put(ctx, store.CollectionSettings, "general", settings))

		raw, err := backend.Get(ctx, store.CollectionSettings, "general")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "pay first", got["instructions"])

		// Overwrite wholesale.
		require.NoError(t, backend.Put(ctx, store.CollectionSettings, "general", map[string]any{"instructions": "changed"}))
		raw, err = backend.Get(ctx, store.CollectionSettings, "general")
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "changed", got["instructions"])
	})
}
