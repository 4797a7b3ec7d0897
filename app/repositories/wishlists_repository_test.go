package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleWishlistRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWishlistRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "wisher@example.com")
	brand := seedBrand(t, db, "Northwind")
	shirts := seedCategory(t, db, "Shirts")
	product := seedProduct(t, db, "Oxford Shirt", 40, brand, shirts)

	exists, err := repo.Exists(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	action, err := repo.Toggle(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, WishlistAdded, action)

	exists, err = repo.Exists(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// Toggling again restores the original state.
	action, err = repo.Toggle(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, WishlistRemoved, action)

	exists, err = repo.Exists(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetByUserNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWishlistRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "wisher@example.com")
	other := seedUser(t, db, "other@example.com")
	brand := seedBrand(t, db, "Northwind")
	shirts := seedCategory(t, db, "Shirts")
	shirt := seedProduct(t, db, "Oxford Shirt", 40, brand, shirts)
	flannel := seedProduct(t, db, "Flannel Shirt", 55, brand, shirts)

	_, err := repo.Toggle(ctx, user.ID, shirt.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, user.ID, flannel.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, other.ID, shirt.ID)
	require.NoError(t, err)

	entries, err := repo.GetByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, user.ID, entry.UserID)
		assert.NotEmpty(t, entry.Product.Name)
	}
}
