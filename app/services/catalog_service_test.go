package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/gearbay/app/models"
)

func TestCreateStampsOwnerFromClaims(t *testing.T) {
	parts := newFakePartStore()
	svc := NewCatalogService(parts)

	created, err := svc.Create(context.Background(), "seller@example.com", models.Part{
		Title: "alternator",
		Email: "spoofed@example.com",
		Price: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "seller@example.com", created.Email)
}

func TestUpdateDedupRejectsDuplicateListing(t *testing.T) {
	parts := newFakePartStore()
	id := parts.put(models.Part{
		Title: "alternator",
		Email: "seller@example.com",
		Price: 120,
	})
	svc := NewCatalogService(parts)

	// Resubmitting the same (email, title) pair is refused; the stored
	// listing comes back untouched.
	res, err := svc.UpdateDedup(context.Background(), "seller@example.com", primitive.NewObjectID().Hex(), "alternator",
		map[string]any{"price": 99.0})
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Equal(t, 120.0, res.Part.Price)

	stored, err := parts.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 120.0, stored.Price)
	assert.Len(t, parts.parts, 1)
}

func TestUpdateDedupAppliesWhenTitleIsNew(t *testing.T) {
	parts := newFakePartStore()
	id := parts.put(models.Part{
		Title: "alternator",
		Email: "seller@example.com",
		Price: 120,
	})
	svc := NewCatalogService(parts)

	res, err := svc.UpdateDedup(context.Background(), "seller@example.com", id, "starter motor",
		map[string]any{"price": 80.0})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, 80.0, res.Part.Price)
}

func TestAdjustStock(t *testing.T) {
	parts := newFakePartStore()
	id := parts.put(models.Part{Title: "alternator", Stock: 3})
	svc := NewCatalogService(parts)

	require.NoError(t, svc.AdjustStock(context.Background(), id, 40))

	part, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 40, part.Stock)
}

func TestDeleteRemovesPart(t *testing.T) {
	parts := newFakePartStore()
	id := parts.put(models.Part{Title: "alternator"})
	svc := NewCatalogService(parts)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Empty(t, parts.parts)
}
