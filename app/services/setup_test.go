package services

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

func seedCatalog(t *testing.T, db *gorm.DB) (*models.Brand, *models.Category) {
	t.Helper()
	brand := &models.Brand{
		ID:   uuid.New().String(),
		Name: "Northwind",
		Slug: "brand-" + uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(brand).Error)

	category := &models.Category{
		ID:   uuid.New().String(),
		Name: "Shirts",
		Slug: "category-" + uuid.NewString()[:8],
	}
	require.NoError(t, db.Create(category).Error)
	return brand, category
}

func seedProduct(t *testing.T, db *gorm.DB, name string, brand *models.Brand, category *models.Category, sizes ...string) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Slug:          "product-" + uuid.NewString()[:8],
		BrandID:       brand.ID,
		CategoryID:    category.ID,
		OriginalPrice: decimal.NewFromInt(40),
		CurrentPrice:  decimal.NewFromInt(40),
		IsActive:      true,
	}
	require.NoError(t, db.Create(product).Error)

	for _, size := range sizes {
		variant := &models.ProductVariant{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			Color:         "Navy",
			Size:          size,
			SizeType:      models.SizeTypeClothing,
			StockQuantity: 5,
			IsAvailable:   true,
		}
		require.NoError(t, db.Create(variant).Error)
	}
	return product
}

func seedAffiliateLink(t *testing.T, db *gorm.DB, product *models.Product) *models.AffiliateLink {
	t.Helper()

	partner := &models.AffiliatePartner{
		ID:                 uuid.New().String(),
		Name:               "Partner Store",
		Slug:               "partner-" + uuid.NewString()[:8],
		Website:            "https://partner.example",
		CookieDurationDays: 30,
		IsActive:           true,
	}
	require.NoError(t, db.Create(partner).Error)

	link := &models.AffiliateLink{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		PartnerID:    partner.ID,
		AffiliateURL: "https://partner.example/p/" + product.Slug,
		PartnerPrice: decimal.NewFromInt(45),
		IsActive:     true,
	}
	require.NoError(t, db.Create(link).Error)
	return link
}
