package repositories

import (
	"context"
	"fmt"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SizeProfileRepositoryImpl interface {
	FindByUserID(ctx context.Context, userID string) (*models.SizeProfile, error)
	GetOrCreate(ctx context.Context, userID string) (*models.SizeProfile, error)
	Update(ctx context.Context, profile *models.SizeProfile) error
}

type sizeProfileRepository struct {
	db *gorm.DB
}

func NewSizeProfileRepository(db *gorm.DB) SizeProfileRepositoryImpl {
	return &sizeProfileRepository{db}
}

func (r *sizeProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.SizeProfile, error) {
	var profile models.SizeProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *sizeProfileRepository) GetOrCreate(ctx context.Context, userID string) (*models.SizeProfile, error) {
	profile, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = &models.SizeProfile{
		ID:           uuid.New().String(),
		UserID:       userID,
		PreferredFit: models.FitRegular,
	}
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create size profile for user %s: %w", userID, err)
	}
	return profile, nil
}

func (r *sizeProfileRepository) Update(ctx context.Context, profile *models.SizeProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
