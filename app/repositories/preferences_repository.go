package repositories

import (
	"context"
	"fmt"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PreferenceRepositoryImpl interface {
	FindByUserID(ctx context.Context, userID string) (*models.UserPreference, error)
	GetOrCreate(ctx context.Context, userID string) (*models.UserPreference, error)
	Update(ctx context.Context, pref *models.UserPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepositoryImpl {
	return &preferenceRepository{db}
}

func (r *preferenceRepository) FindByUserID(ctx context.Context, userID string) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) GetOrCreate(ctx context.Context, userID string) (*models.UserPreference, error) {
	pref, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pref != nil {
		return pref, nil
	}

	pref = &models.UserPreference{
		ID:     uuid.New().String(),
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(pref).Error; err != nil {
		return nil, fmt.Errorf("failed to create preferences for user %s: %w", userID, err)
	}
	return pref, nil
}

func (r *preferenceRepository) Update(ctx context.Context, pref *models.UserPreference) error {
	return r.db.WithContext(ctx).Save(pref).Error
}
