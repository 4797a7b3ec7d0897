package migrations

import (
	"github.com/fitfinder/fitfinder/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.SizeProfile{},
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductVariant{},
		&models.AffiliatePartner{},
		&models.AffiliateLink{},
		&models.ClickTracking{},
		&models.Review{},
		&models.ReviewImage{},
		&models.UserActivity{},
		&models.Wishlist{},
		&models.UserPreference{},
	)
}
