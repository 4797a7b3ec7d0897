package fakers

import (
	"math/rand"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

func PartnerFaker() *models.AffiliatePartner {
	name := faker.LastName() + " Store"
	return &models.AffiliatePartner{
		ID:                    uuid.New().String(),
		Name:                  name,
		Slug:                  slug.Make(name + "-" + uuid.NewString()[:6]),
		Website:               "https://" + faker.DomainName(),
		DefaultCommissionRate: decimal.NewFromFloat(0.05),
		CookieDurationDays:    30,
		IsActive:              true,
	}
}

func LinkFaker(product *models.Product, partner *models.AffiliatePartner) *models.AffiliateLink {
	partnerPrice := product.CurrentPrice.Add(decimal.NewFromInt(int64(rand.Intn(21) - 10)))
	return &models.AffiliateLink{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		PartnerID:    partner.ID,
		AffiliateURL: partner.Website + "/p/" + product.Slug + "?ref=fitfinder",
		PartnerPrice: partnerPrice,
		IsActive:     true,
	}
}
