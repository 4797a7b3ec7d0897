package repositories

import (
	"testing"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/models/migrations"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.New().String(),
		FirstName: "Quinn",
		LastName:  "Shopper",
		Email:     email,
		Password:  "not-a-real-hash",
		Role:      models.RoleCustomer,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedBrand(t *testing.T, db *gorm.DB, name string) *models.Brand {
	t.Helper()
	brand := &models.Brand{
		ID:   uuid.New().String(),
		Name: name,
		Slug: "brand-" + uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(brand).Error)
	return brand
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:   uuid.New().String(),
		Name: name,
		Slug: "category-" + uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

type variantSpec struct {
	color    string
	size     string
	sizeType string
	stock    int
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64, brand *models.Brand, category *models.Category, variants ...variantSpec) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Slug:          "product-" + uuid.NewString()[:8],
		Description:   name + " description",
		BrandID:       brand.ID,
		CategoryID:    category.ID,
		OriginalPrice: decimal.NewFromInt(price),
		CurrentPrice:  decimal.NewFromInt(price),
		IsActive:      true,
	}
	require.NoError(t, db.Create(product).Error)

	for _, spec := range variants {
		variant := &models.ProductVariant{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Color:         spec.color,
			Size:          spec.size,
			SizeType:      spec.sizeType,
			StockQuantity: spec.stock,
			IsAvailable:   true,
		}
		require.NoError(t, db.Create(variant).Error)
	}

	return product
}
