package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/repositories"
	"github.com/fitfinder/fitfinder/app/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAffiliateHandler(db *gorm.DB, store *stubSessionStore) *AffiliateHandler {
	service := services.NewAffiliateService(
		repositories.NewAffiliateRepository(db),
		repositories.NewActivityRepository(db),
	)
	return NewAffiliateHandler(service, store)
}

func seedAffiliateLink(t *testing.T, db *gorm.DB, product *models.Product, cookieDays int) *models.AffiliateLink {
	t.Helper()

	partner := &models.AffiliatePartner{
		ID:                 uuid.New().String(),
		Name:               "Partner Store",
		Slug:               "partner-" + uuid.NewString()[:8],
		Website:            "https://partner.example",
		CookieDurationDays: cookieDays,
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

func TestRedirectSetsTrackingCookie(t *testing.T) {
	db := setupTestDB(t)
	handler := newAffiliateHandler(db, &stubSessionStore{})

	product := seedProduct(t, db, "Oxford Shirt")
	link := seedAffiliateLink(t, db, product, 7)

	router := mux.NewRouter()
	router.HandleFunc("/affiliates/redirect/{linkID}", handler.Redirect)

	req := httptest.NewRequest(http.MethodGet, "/affiliates/redirect/"+link.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, link.AffiliateURL, rec.Header().Get("Location"))

	var tracking *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == models.TrackingCookieName {
			tracking = cookie
		}
	}
	require.NotNil(t, tracking)
	assert.NotEmpty(t, tracking.Value)
	assert.Equal(t, 7*24*60*60, tracking.MaxAge)
	assert.True(t, tracking.HttpOnly)

	var stored models.AffiliateLink
	require.NoError(t, db.First(&stored, "id = ?", link.ID).Error)
	assert.Equal(t, 1, stored.Clicks)
}

func TestRedirectUnknownLink(t *testing.T) {
	db := setupTestDB(t)
	handler := newAffiliateHandler(db, &stubSessionStore{})

	router := mux.NewRouter()
	router.HandleFunc("/affiliates/redirect/{linkID}", handler.Redirect)

	req := httptest.NewRequest(http.MethodGet, "/affiliates/redirect/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
