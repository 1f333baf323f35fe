package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fpv247/storefront-backend/internal/models"
)

func TestMemInsertAndFindByID(t *testing.T) {
	ctx := context.Background()
	mem := NewMem()

	p := models.NewProduct("2207 1950KV Pro Motor", 23.9, "motors")
	id, err := mem.Insert(ctx, models.CollectionProduct, p)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	raw, err := mem.FindByID(ctx, models.CollectionProduct, id)
	require.NoError(t, err)

	var got models.Product
	require.NoError(t, bson.Unmarshal(raw, &got))
	assert.Equal(t, "2207 1950KV Pro Motor", got.Title)
	assert.Equal(t, 23.9, got.Price)

	assert.Equal(t, id, DocumentID(raw))
}

func TestMemFindByIDNotFound(t *testing.T) {
	ctx := context.Background()
	mem := NewMem()

	_, err := mem.FindByID(ctx, models.CollectionProduct, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)

	// Unknown collections behave like empty ones.
	_, err = mem.FindByID(ctx, "nothing", "id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemQuery(t *testing.T) {
	ctx := context.Background()
	mem := NewMem()

	frame := models.NewProduct("Freestyle Frame", 49.9, "frames")
	motorA := models.NewProduct("Motor A", 23.9, "motors")
	motorB := models.NewProduct("Motor B", 25.9, "motors")
	motorB.Featured = true

	for _, p := range []models.Product{frame, motorA, motorB} {
		_, err := mem.Insert(ctx, models.CollectionProduct, p)
		require.NoError(t, err)
	}

	t.Run("no filter matches all", func(t *testing.T) {
		docs, err := mem.Query(ctx, models.CollectionProduct, nil, 50)
		require.NoError(t, err)
		assert.Len(t, docs, 3)
	})

	t.Run("equality filter", func(t *testing.T) {
		docs, err := mem.Query(ctx, models.CollectionProduct, map[string]any{"category": "motors"}, 50)
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("filters are ANDed", func(t *testing.T) {
		docs, err := mem.Query(ctx, models.CollectionProduct,
			map[string]any{"category": "motors", "featured": true}, 50)
		require.NoError(t, err)
		require.Len(t, docs, 1)

		var got models.Product
		require.NoError(t, bson.Unmarshal(docs[0], &got))
		assert.Equal(t, "Motor B", got.Title)
	})

	t.Run("limit caps results", func(t *testing.T) {
		docs, err := mem.Query(ctx, models.CollectionProduct, nil, 2)
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("no match is empty, not an error", func(t *testing.T) {
		docs, err := mem.Query(ctx, models.CollectionProduct, map[string]any{"category": "goggles"}, 50)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestMemUpsert(t *testing.T) {
	ctx := context.Background()
	mem := NewMem()

	first := models.Category{Slug: "motors", Name: "Motors"}
	require.NoError(t, mem.Upsert(ctx, models.CollectionCategory, map[string]any{"slug": "motors"}, first))

	update := models.Category{Slug: "motors", Name: "Brushless Motors"}
	require.NoError(t, mem.Upsert(ctx, models.CollectionCategory, map[string]any{"slug": "motors"}, update))

	docs, err := mem.Query(ctx, models.CollectionCategory, nil, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	var got models.Category
	require.NoError(t, bson.Unmarshal(docs[0], &got))
	assert.Equal(t, "Brushless Motors", got.Name)
}

func TestMemCollections(t *testing.T) {
	ctx := context.Background()
	mem := NewMem()

	_, err := mem.Insert(ctx, models.CollectionProduct, models.NewProduct("Motor", 23.9, "motors"))
	require.NoError(t, err)
	require.NoError(t, mem.Upsert(ctx, models.CollectionCategory, map[string]any{"slug": "motors"},
		models.Category{Slug: "motors", Name: "Motors"}))

	names, err := mem.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{models.CollectionCategory, models.CollectionProduct}, names)

	assert.True(t, mem.Configured())
	assert.NoError(t, mem.Ping(ctx))
}
