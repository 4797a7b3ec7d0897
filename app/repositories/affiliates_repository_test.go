package repositories

import (
	"context"
	"testing"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPartner(t *testing.T, db *gorm.DB, active bool) *models.AffiliatePartner {
	t.Helper()
	partner := &models.AffiliatePartner{
		ID:                 uuid.New().String(),
		Name:               "Partner Store",
		Slug:               "partner-" + uuid.NewString()[:8],
		Website:            "https://partner.example",
		CookieDurationDays: 30,
		IsActive:           active,
	}
	require.NoError(t, db.Create(partner).Error)
	return partner
}

func seedLink(t *testing.T, db *gorm.DB, product *models.Product, partner *models.AffiliatePartner, active bool) *models.AffiliateLink {
	t.Helper()
	link := &models.AffiliateLink{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		PartnerID:    partner.ID,
		AffiliateURL: "https://partner.example/p/" + product.Slug,
		PartnerPrice: decimal.NewFromInt(45),
		IsActive:     active,
	}
	require.NoError(t, db.Create(link).Error)
	return link
}

func TestGetActiveLinkRequiresActivePartner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAffiliateRepository(db)
	ctx := context.Background()

	brand := seedBrand(t, db, "Northwind")
	shirts := seedCategory(t, db, "Shirts")
	product := seedProduct(t, db, "Oxford Shirt", 40, brand, shirts)

	activePartner := seedPartner(t, db, true)
	inactivePartner := seedPartner(t, db, false)

	activeLink := seedLink(t, db, product, activePartner, true)
	deadPartnerLink := seedLink(t, db, product, inactivePartner, true)
	otherProduct := seedProduct(t, db, "Flannel Shirt", 55, brand, shirts)
	inactiveLink := seedLink(t, db, otherProduct, activePartner, false)

	link, err := repo.GetActiveLink(ctx, activeLink.ID)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, activePartner.ID, link.Partner.ID)

	link, err = repo.GetActiveLink(ctx, deadPartnerLink.ID)
	require.NoError(t, err)
	assert.Nil(t, link)

	link, err = repo.GetActiveLink(ctx, inactiveLink.ID)
	require.NoError(t, err)
	assert.Nil(t, link)
}

func TestCreateClickAssignsTrackingID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAffiliateRepository(db)
	ctx := context.Background()

	brand := seedBrand(t, db, "Northwind")
	shirts := seedCategory(t, db, "Shirts")
	product := seedProduct(t, db, "Oxford Shirt", 40, brand, shirts)
	partner := seedPartner(t, db, true)
	link := seedLink(t, db, product, partner, true)

	click := &models.ClickTracking{
		AffiliateLinkID: link.ID,
		SessionID:       "session-1",
		IPAddress:       "203.0.113.7",
		UserAgent:       "test-agent",
	}
	require.NoError(t, repo.CreateClick(ctx, click))
	assert.NotEmpty(t, click.TrackingID)
	assert.False(t, click.ClickedAt.IsZero())

	found, err := repo.FindClickByTrackingID(ctx, click.TrackingID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, link.ID, found.AffiliateLinkID)
	assert.False(t, found.Converted)
}

func TestMarkConvertedOnlyOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAffiliateRepository(db)
	ctx := context.Background()

	brand := seedBrand(t, db, "Northwind")
	shirts := seedCategory(t, db, "Shirts")
	product := seedProduct(t, db, "Oxford Shirt", 40, brand, shirts)
	partner := seedPartner(t, db, true)
	link := seedLink(t, db, product, partner, true)

	click := &models.ClickTracking{AffiliateLinkID: link.ID, SessionID: "s", IPAddress: "203.0.113.7"}
	require.NoError(t, repo.CreateClick(ctx, click))

	value := decimal.NewFromInt(45)
	commission := decimal.NewFromFloat(2.25)
	require.NoError(t, repo.MarkConverted(ctx, click.TrackingID, value, commission))
	// Second conversion callback for the same tracking id is a no-op.
	require.NoError(t, repo.MarkConverted(ctx, click.TrackingID, value, commission))

	var stored models.AffiliateLink
	require.NoError(t, db.First(&stored, "id = ?", link.ID).Error)
	assert.Equal(t, 1, stored.Conversions)

	converted, err := repo.FindClickByTrackingID(ctx, click.TrackingID)
	require.NoError(t, err)
	require.NotNil(t, converted)
	assert.True(t, converted.Converted)
	assert.NotNil(t, converted.ConvertedAt)
}
