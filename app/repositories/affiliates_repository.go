package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AffiliateRepositoryImpl interface {
	GetActiveLink(ctx context.Context, linkID string) (*models.AffiliateLink, error)
	GetActiveLinksByProduct(ctx context.Context, productID string) ([]models.AffiliateLink, error)
	CreateClick(ctx context.Context, click *models.ClickTracking) error
	IncrementClicks(ctx context.Context, linkID string) error
	FindClickByTrackingID(ctx context.Context, trackingID string) (*models.ClickTracking, error)
	MarkConverted(ctx context.Context, trackingID string, value, commission decimal.Decimal) error
}

type affiliateRepository struct {
	db *gorm.DB
}

func NewAffiliateRepository(db *gorm.DB) AffiliateRepositoryImpl {
	return &affiliateRepository{db}
}

// GetActiveLink resolves a link only when both the link and its partner are
// active.
func (r *affiliateRepository) GetActiveLink(ctx context.Context, linkID string) (*models.AffiliateLink, error) {
	var link models.AffiliateLink
	err := r.db.WithContext(ctx).
		Joins("JOIN affiliate_partners ON affiliate_partners.id = affiliate_links.partner_id AND affiliate_partners.is_active = ?", true).
		Preload("Partner").
		Preload("Product").
		Where("affiliate_links.id = ? AND affiliate_links.is_active = ?", linkID, true).
		First(&link).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *affiliateRepository) GetActiveLinksByProduct(ctx context.Context, productID string) ([]models.AffiliateLink, error) {
	var links []models.AffiliateLink
	err := r.db.WithContext(ctx).
		Joins("JOIN affiliate_partners ON affiliate_partners.id = affiliate_links.partner_id AND affiliate_partners.is_active = ?", true).
		Preload("Partner").
		Where("affiliate_links.product_id = ? AND affiliate_links.is_active = ?", productID, true).
		Order("affiliate_links.partner_price ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *affiliateRepository) CreateClick(ctx context.Context, click *models.ClickTracking) error {
	if click.ID == "" {
		click.ID = uuid.New().String()
	}
	if click.TrackingID == "" {
		click.TrackingID = uuid.New().String()
	}
	if click.ClickedAt.IsZero() {
		click.ClickedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(click).Error; err != nil {
		return fmt.Errorf("failed to create click tracking record: %w", err)
	}
	return nil
}

// IncrementClicks bumps the click counter in a single UPDATE so concurrent
// redirects never lose increments.
func (r *affiliateRepository) IncrementClicks(ctx context.Context, linkID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.AffiliateLink{}).
		Where("id = ?", linkID).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("failed to increment clicks for link %s: %w", linkID, result.Error)
	}
	return nil
}

func (r *affiliateRepository) FindClickByTrackingID(ctx context.Context, trackingID string) (*models.ClickTracking, error) {
	var click models.ClickTracking
	err := r.db.WithContext(ctx).
		Preload("AffiliateLink").
		Where("tracking_id = ?", trackingID).
		First(&click).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &click, nil
}

// MarkConverted flags a click as converted and bumps the link's conversion
// counter atomically. Already-converted clicks are left untouched.
func (r *affiliateRepository) MarkConverted(ctx context.Context, trackingID string, value, commission decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var click models.ClickTracking
		if err := tx.Where("tracking_id = ? AND converted = ?", trackingID, false).First(&click).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		now := time.Now()
		updates := map[string]interface{}{
			"converted":         true,
			"conversion_value":  value,
			"commission_earned": commission,
			"converted_at":      now,
		}
		if err := tx.Model(&models.ClickTracking{}).Where("id = ?", click.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to mark click %s converted: %w", trackingID, err)
		}

		result := tx.Model(&models.AffiliateLink{}).
			Where("id = ?", click.AffiliateLinkID).
			UpdateColumn("conversions", gorm.Expr("conversions + ?", 1))
		if result.Error != nil {
			return fmt.Errorf("failed to increment conversions for link %s: %w", click.AffiliateLinkID, result.Error)
		}
		return nil
	})
}
