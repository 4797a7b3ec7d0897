package services

import (
	"context"
	"fmt"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/repositories"
)

const recommendationLimit = 8

// Recommendations carries the three independently computed candidate lists.
// They are deliberately not merged, cross-deduplicated, or weighted: each is
// rendered as its own section.
type Recommendations struct {
	ByCategory  []models.Product
	SizeMatched []models.Product
	MostViewed  []models.Product
}

type RecommendationService struct {
	productRepo  repositories.ProductRepositoryImpl
	activityRepo repositories.ActivityRepositoryImpl
	profileRepo  repositories.SizeProfileRepositoryImpl
}

func NewRecommendationService(
	productRepo repositories.ProductRepositoryImpl,
	activityRepo repositories.ActivityRepositoryImpl,
	profileRepo repositories.SizeProfileRepositoryImpl,
) *RecommendationService {
	return &RecommendationService{
		productRepo:  productRepo,
		activityRepo: activityRepo,
		profileRepo:  profileRepo,
	}
}

// ForUser assembles the recommendation lists for an authenticated user. Every
// list excludes products the user has already viewed. A missing size profile
// yields an empty size-matched list, not an error.
func (s *RecommendationService) ForUser(ctx context.Context, userID string) (*Recommendations, error) {
	viewedIDs, err := s.activityRepo.ViewedProductIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load viewed products for user %s: %w", userID, err)
	}

	recs := &Recommendations{}

	if len(viewedIDs) > 0 {
		categoryIDs, err := s.activityRepo.ViewedCategoryIDs(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load viewed categories for user %s: %w", userID, err)
		}
		recs.ByCategory, err = s.productRepo.GetByCategoryIDs(ctx, categoryIDs, viewedIDs, recommendationLimit)
		if err != nil {
			return nil, err
		}
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.HasSizes() {
		recs.SizeMatched, err = s.productRepo.GetBySizeMatch(ctx, profile.SizesByType(), viewedIDs, recommendationLimit)
		if err != nil {
			return nil, err
		}
	}

	recs.MostViewed, err = s.productRepo.GetMostViewed(ctx, viewedIDs, recommendationLimit)
	if err != nil {
		return nil, err
	}

	return recs, nil
}
