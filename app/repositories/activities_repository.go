package repositories

import (
	"context"
	"fmt"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepositoryImpl is append-only on purpose: the log exposes creation
// and reads, never updates or deletes.
type ActivityRepositoryImpl interface {
	Log(ctx context.Context, userID, productID, activityType, sessionID, source string) error
	ViewedProductIDs(ctx context.Context, userID string) ([]string, error)
	ViewedCategoryIDs(ctx context.Context, userID string) ([]string, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepositoryImpl {
	return &activityRepository{db}
}

func (r *activityRepository) Log(ctx context.Context, userID, productID, activityType, sessionID, source string) error {
	activity := models.UserActivity{
		ID:           uuid.New().String(),
		UserID:       userID,
		ProductID:    productID,
		ActivityType: activityType,
		SessionID:    sessionID,
		Source:       source,
	}
	if err := r.db.WithContext(ctx).Create(&activity).Error; err != nil {
		return fmt.Errorf("failed to log %s activity for user %s: %w", activityType, userID, err)
	}
	return nil
}

// ViewedProductIDs returns the distinct products the user has view events
// for, in no particular order.
func (r *activityRepository) ViewedProductIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.UserActivity{}).
		Distinct("product_id").
		Where("user_id = ? AND activity_type = ?", userID, models.ActivityView).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ViewedCategoryIDs returns the distinct categories of products the user has
// viewed.
func (r *activityRepository) ViewedCategoryIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.UserActivity{}).
		Distinct("products.category_id").
		Joins("JOIN products ON products.id = user_activities.product_id").
		Where("user_activities.user_id = ? AND user_activities.activity_type = ?", userID, models.ActivityView).
		Pluck("products.category_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
