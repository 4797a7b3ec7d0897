package handlers

import (
	"net/http"
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

// stubSessionStore hands back fixed values so handler tests stay independent
// of cookie encoding.
type stubSessionStore struct {
	userID    string
	sessionID string
}

func (s *stubSessionStore) GetUserID(_ *http.Request) string { return s.userID }

func (s *stubSessionStore) SetUserID(_ http.ResponseWriter, _ *http.Request, userID string) error {
	s.userID = userID
	return nil
}

func (s *stubSessionStore) ClearUserID(_ http.ResponseWriter, _ *http.Request) error {
	s.userID = ""
	return nil
}

func (s *stubSessionStore) GetSessionID(_ http.ResponseWriter, _ *http.Request) string {
	if s.sessionID == "" {
		s.sessionID = "test-session"
	}
	return s.sessionID
}

func (s *stubSessionStore) ClearSession(_ http.ResponseWriter, _ *http.Request) error {
	s.userID = ""
	s.sessionID = ""
	return nil
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

func seedProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()

	brand := &models.Brand{ID: uuid.New().String(), Name: "Northwind", Slug: "brand-" + uuid.NewString()[:8]}
	require.NoError(t, db.Create(brand).Error)
	category := &models.Category{ID: uuid.New().String(), Name: "Shirts", Slug: "category-" + uuid.NewString()[:8]}
	require.NoError(t, db.Create(category).Error)

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
	return product
}

func seedVariant(t *testing.T, db *gorm.DB, product *models.Product, color, size string, stock int) *models.ProductVariant {
	t.Helper()
	variant := &models.ProductVariant{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		Color:         color,
		Size:          size,
		SizeType:      models.SizeTypeClothing,
		StockQuantity: stock,
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(variant).Error)
	return variant
}
