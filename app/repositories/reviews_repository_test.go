package repositories

import (
	"context"
	"testing"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedReviewProduct(t *testing.T, db *gorm.DB) *models.Product {
	t.Helper()
	brand := seedBrand(t, db, "Northwind")
	shirts := seedCategory(t, db, "Shirts")
	return seedProduct(t, db, "Oxford Shirt", 40, brand, shirts)
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	product := seedReviewProduct(t, db)
	user := seedUser(t, db, "reviewer@example.com")

	first := &models.Review{
		ProductID:     product.ID,
		UserID:        user.ID,
		Rating:        4,
		Title:         "Fits well",
		Content:       "Comfortable after a wash.",
		SizePurchased: "M",
		FitRating:     models.FitRatingTrueToSize,
	}
	require.NoError(t, repo.Create(ctx, first, []string{"reviews/one.jpg", "reviews/two.jpg"}))

	second := &models.Review{
		ProductID: product.ID,
		UserID:    user.ID,
		Rating:    1,
		Title:     "Changed my mind",
		FitRating: models.FitRatingSmall,
	}
	err := repo.Create(ctx, second, nil)
	assert.ErrorIs(t, err, ErrDuplicateReview)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Where("product_id = ? AND user_id = ?", product.ID, user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var images int64
	require.NoError(t, db.Model(&models.ReviewImage{}).Where("review_id = ?", first.ID).Count(&images).Error)
	assert.Equal(t, int64(2), images)
}

func TestApprovalGatesListingsAndAggregates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	product := seedReviewProduct(t, db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	approved := &models.Review{
		ProductID: product.ID,
		UserID:    alice.ID,
		Rating:    5,
		Title:     "Great shirt",
		FitRating: models.FitRatingTrueToSize,
	}
	require.NoError(t, repo.Create(ctx, approved, nil))
	require.NoError(t, repo.Approve(ctx, approved.ID))

	pending := &models.Review{
		ProductID: product.ID,
		UserID:    bob.ID,
		Rating:    1,
		Title:     "Not for me",
		FitRating: models.FitRatingVeryLarge,
	}
	require.NoError(t, repo.Create(ctx, pending, nil))

	reviews, total, err := repo.GetApprovedByProduct(ctx, product.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, reviews, 1)
	assert.Equal(t, approved.ID, reviews[0].ID)
	assert.Equal(t, "alice@example.com", reviews[0].User.Email)

	avg, err := repo.AverageRating(ctx, product.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, avg, 0.001)

	counts, err := repo.RatingCounts(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[5])
	assert.Equal(t, int64(0), counts[1])
	assert.Len(t, counts, 5)
}

func TestAverageRatingNoApprovedReviews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)

	product := seedReviewProduct(t, db)

	avg, err := repo.AverageRating(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestAddVoteCountsAndMissingReview(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	product := seedReviewProduct(t, db)
	user := seedUser(t, db, "voter@example.com")

	review := &models.Review{
		ProductID: product.ID,
		UserID:    user.ID,
		Rating:    3,
		Title:     "Okay",
		FitRating: models.FitRatingLarge,
	}
	require.NoError(t, repo.Create(ctx, review, nil))

	updated, err := repo.AddVote(ctx, review.ID, true)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.HelpfulVotes)
	assert.Equal(t, 0, updated.UnhelpfulVotes)

	updated, err = repo.AddVote(ctx, review.ID, false)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.HelpfulVotes)
	assert.Equal(t, 1, updated.UnhelpfulVotes)

	missing, err := repo.AddVote(ctx, "no-such-review", true)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
