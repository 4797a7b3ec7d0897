package repositories

import (
	"context"

	"github.com/fitfinder/fitfinder/app/models"
	"gorm.io/gorm"
)

type BrandRepositoryImpl interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
	GetAll(ctx context.Context) ([]models.Brand, error)
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepositoryImpl {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepository) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetAll(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}
