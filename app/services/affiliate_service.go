package services

import (
	"context"
	"fmt"
	"log"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/fitfinder/fitfinder/app/repositories"
)

// ErrLinkNotFound covers missing, inactive, and inactive-partner links alike.
var ErrLinkNotFound = fmt.Errorf("affiliate link not found or inactive")

// ClickParams captures the request attributes recorded with a click.
type ClickParams struct {
	UserID    string
	SessionID string
	IPAddress string
	UserAgent string
	Referrer  string
}

type AffiliateService struct {
	affiliateRepo repositories.AffiliateRepositoryImpl
	activityRepo  repositories.ActivityRepositoryImpl
}

func NewAffiliateService(
	affiliateRepo repositories.AffiliateRepositoryImpl,
	activityRepo repositories.ActivityRepositoryImpl,
) *AffiliateService {
	return &AffiliateService{
		affiliateRepo: affiliateRepo,
		activityRepo:  activityRepo,
	}
}

// TrackClick records an outbound click: an immutable tracking row with a
// fresh tracking id, an atomic click-counter bump, and a click activity for
// authenticated callers. The returned link carries the redirect target and
// the partner's cookie window.
func (s *AffiliateService) TrackClick(ctx context.Context, linkID string, params ClickParams) (*models.AffiliateLink, *models.ClickTracking, error) {
	link, err := s.affiliateRepo.GetActiveLink(ctx, linkID)
	if err != nil {
		return nil, nil, err
	}
	if link == nil {
		return nil, nil, ErrLinkNotFound
	}

	click := &models.ClickTracking{
		AffiliateLinkID: link.ID,
		SessionID:       params.SessionID,
		IPAddress:       params.IPAddress,
		UserAgent:       params.UserAgent,
		Referrer:        params.Referrer,
	}
	if params.UserID != "" {
		userID := params.UserID
		click.UserID = &userID
	}

	if err := s.affiliateRepo.CreateClick(ctx, click); err != nil {
		return nil, nil, err
	}

	if err := s.affiliateRepo.IncrementClicks(ctx, link.ID); err != nil {
		return nil, nil, err
	}

	if params.UserID != "" {
		if err := s.activityRepo.Log(ctx, params.UserID, link.ProductID, models.ActivityClick, params.SessionID, "affiliate"); err != nil {
			log.Printf("AffiliateService.TrackClick: failed to log click activity for user %s: %v", params.UserID, err)
		}
	}

	return link, click, nil
}
