package repositories

import (
	"context"

	"github.com/fitfinder/fitfinder/app/models"
	"gorm.io/gorm"
)

type VariantRepositoryImpl interface {
	GetAvailableByProduct(ctx context.Context, productID, color string) ([]models.ProductVariant, error)
	Create(ctx context.Context, variant *models.ProductVariant) error
}

type variantRepository struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) VariantRepositoryImpl {
	return &variantRepository{db}
}

// GetAvailableByProduct lists a product's available variants, optionally
// narrowed to one color. Color filtering is exact match.
func (r *variantRepository) GetAvailableByProduct(ctx context.Context, productID, color string) ([]models.ProductVariant, error) {
	q := r.db.WithContext(ctx).
		Where("product_id = ? AND is_available = ?", productID, true)
	if color != "" {
		q = q.Where("color = ?", color)
	}

	var variants []models.ProductVariant
	err := q.Order("size ASC").Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *variantRepository) Create(ctx context.Context, variant *models.ProductVariant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}
