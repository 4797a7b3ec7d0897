package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesGetOrCreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPreferenceRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "prefs@example.com")

	first, err := repo.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, first)

	again, err := repo.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	maxPrice := decimal.NewFromInt(100)
	again.MaxPrice = &maxPrice
	again.PreferredColors = "navy,black"
	require.NoError(t, repo.Update(ctx, again))

	stored, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.MaxPrice)
	assert.True(t, stored.MaxPrice.Equal(maxPrice))
	assert.Equal(t, "navy,black", stored.PreferredColors)
}
