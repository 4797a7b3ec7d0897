package repositories

import (
	"context"
	"fmt"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateReview signals a second review attempt for the same
// (user, product) pair.
var ErrDuplicateReview = fmt.Errorf("user has already reviewed this product")

type ReviewRepositoryImpl interface {
	Create(ctx context.Context, review *models.Review, imagePaths []string) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	FindByProductAndUser(ctx context.Context, productID, userID string) (*models.Review, error)
	GetApprovedByProduct(ctx context.Context, productID string, limit, offset int) ([]models.Review, int64, error)
	AverageRating(ctx context.Context, productID string) (float64, error)
	RatingCounts(ctx context.Context, productID string) (map[int]int64, error)
	AddVote(ctx context.Context, reviewID string, helpful bool) (*models.Review, error)
	Approve(ctx context.Context, reviewID string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryImpl {
	return &reviewRepository{db}
}

// Create stores a review and its images, enforcing one review per
// (user, product). Returns ErrDuplicateReview on a second attempt.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review, imagePaths []string) error {
	existing, err := r.FindByProductAndUser(ctx, review.ProductID, review.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateReview
	}

	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		for _, path := range imagePaths {
			image := models.ReviewImage{
				ID:       uuid.New().String(),
				ReviewID: review.ID,
				Image:    path,
			}
			if err := tx.Create(&image).Error; err != nil {
				return fmt.Errorf("failed to create review image: %w", err)
			}
		}
		return nil
	})
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByProductAndUser(ctx context.Context, productID, userID string) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		First(&review).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// GetApprovedByProduct pages through a product's approved reviews, newest
// first. Unapproved reviews never appear.
func (r *reviewRepository) GetApprovedByProduct(ctx context.Context, productID string, limit, offset int) ([]models.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("product_id = ? AND is_approved = ?", productID, true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Images").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) AverageRating(ctx context.Context, productID string) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("product_id = ? AND is_approved = ?", productID, true).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *reviewRepository) RatingCounts(ctx context.Context, productID string) (map[int]int64, error) {
	var rows []struct {
		Rating int
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, 5)
	for star := 1; star <= 5; star++ {
		counts[star] = 0
	}
	for _, row := range rows {
		counts[row.Rating] = row.Count
	}
	return counts, nil
}

// AddVote bumps the helpful or unhelpful counter atomically and returns the
// review with fresh counts.
func (r *reviewRepository) AddVote(ctx context.Context, reviewID string, helpful bool) (*models.Review, error) {
	column := "unhelpful_votes"
	if helpful {
		column = "helpful_votes"
	}

	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", reviewID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to record vote for review %s: %w", reviewID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, reviewID)
}

func (r *reviewRepository) Approve(ctx context.Context, reviewID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", reviewID).
		UpdateColumn("is_approved", true)
	if result.Error != nil {
		return fmt.Errorf("failed to approve review %s: %w", reviewID, result.Error)
	}
	return nil
}
