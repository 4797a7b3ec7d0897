package seeders

import (
	"math/rand"

	"github.com/fitfinder/fitfinder/app/db/fakers"
	"github.com/fitfinder/fitfinder/app/models"
	"gorm.io/gorm"
)

var categorySizeTypes = map[string]string{
	"Shirts":      models.SizeTypeClothing,
	"Pants":       models.SizeTypeClothing,
	"Dresses":     models.SizeTypeClothing,
	"Shoes":       models.SizeTypeShoe,
	"Accessories": models.SizeTypeAccessory,
}

// DBSeed fills the catalog with fake brands, categories, products, partners
// and affiliate links.
func DBSeed(db *gorm.DB) error {
	var brands []*models.Brand
	for i := 0; i < 5; i++ {
		brand := fakers.BrandFaker()
		if err := db.Create(brand).Error; err != nil {
			return err
		}
		brands = append(brands, brand)
	}

	var partners []*models.AffiliatePartner
	for i := 0; i < 3; i++ {
		partner := fakers.PartnerFaker()
		if err := db.Create(partner).Error; err != nil {
			return err
		}
		partners = append(partners, partner)
	}

	for i := 0; i < 10; i++ {
		if err := db.Create(fakers.UserFaker()).Error; err != nil {
			return err
		}
	}

	for name, sizeType := range categorySizeTypes {
		category := fakers.CategoryFaker(name)
		if err := db.Create(category).Error; err != nil {
			return err
		}

		for i := 0; i < 8; i++ {
			brand := brands[rand.Intn(len(brands))]
			product := fakers.ProductFaker(brand, category, sizeType)
			if err := db.Create(product).Error; err != nil {
				return err
			}

			for _, partner := range partners {
				if rand.Intn(2) == 0 {
					continue
				}
				if err := db.Create(fakers.LinkFaker(product, partner)).Error; err != nil {
					return err
				}
			}
		}
	}

	return nil
}
