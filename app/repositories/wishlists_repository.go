package repositories

import (
	"context"
	"fmt"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WishlistAdded   = "added"
	WishlistRemoved = "removed"
)

type WishlistRepositoryImpl interface {
	Toggle(ctx context.Context, userID, productID string) (string, error)
	Exists(ctx context.Context, userID, productID string) (bool, error)
	GetByUser(ctx context.Context, userID string) ([]models.Wishlist, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepositoryImpl {
	return &wishlistRepository{db}
}

// Toggle removes the entry when present, otherwise creates one, and reports
// which of the two happened.
func (r *wishlistRepository) Toggle(ctx context.Context, userID, productID string) (string, error) {
	var entry models.Wishlist
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&entry).Error

	if err == nil {
		if err := r.db.WithContext(ctx).Delete(&entry).Error; err != nil {
			return "", fmt.Errorf("failed to remove wishlist entry: %w", err)
		}
		return WishlistRemoved, nil
	}
	if err != gorm.ErrRecordNotFound {
		return "", err
	}

	entry = models.Wishlist{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return "", fmt.Errorf("failed to create wishlist entry: %w", err)
	}
	return WishlistAdded, nil
}

func (r *wishlistRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Wishlist{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *wishlistRepository) GetByUser(ctx context.Context, userID string) ([]models.Wishlist, error) {
	var entries []models.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Brand").
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
