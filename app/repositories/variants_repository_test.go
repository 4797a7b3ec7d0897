package repositories

import (
	"context"
	"testing"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailableByProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()

	brand := seedBrand(t, db, "Northwind")
	shoes := seedCategory(t, db, "Shoes")
	product := seedProduct(t, db, "Runner", 80, brand, shoes,
		variantSpec{color: "White", size: "8", sizeType: models.SizeTypeShoe, stock: 5},
		variantSpec{color: "White", size: "9", sizeType: models.SizeTypeShoe, stock: 0},
		variantSpec{color: "Black", size: "8", sizeType: models.SizeTypeShoe, stock: 2},
	)

	variants, err := repo.GetAvailableByProduct(ctx, product.ID, "")
	require.NoError(t, err)
	assert.Len(t, variants, 3)

	// Zero stock still lists the variant; availability is derived from the
	// stock count.
	for _, variant := range variants {
		if variant.StockQuantity == 0 {
			assert.False(t, variant.InStock())
		} else {
			assert.True(t, variant.InStock())
		}
	}

	variants, err = repo.GetAvailableByProduct(ctx, product.ID, "Black")
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "8", variants[0].Size)
	assert.True(t, variants[0].InStock())
}

func TestGetAvailableByProductSkipsUnavailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()

	brand := seedBrand(t, db, "Northwind")
	shoes := seedCategory(t, db, "Shoes")
	product := seedProduct(t, db, "Runner", 80, brand, shoes,
		variantSpec{color: "White", size: "8", sizeType: models.SizeTypeShoe, stock: 5},
	)

	require.NoError(t, db.Model(&models.ProductVariant{}).
		Where("product_id = ?", product.ID).
		Update("is_available", false).Error)

	variants, err := repo.GetAvailableByProduct(ctx, product.ID, "")
	require.NoError(t, err)
	assert.Empty(t, variants)
}
