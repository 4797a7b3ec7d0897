package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AffiliatePartner struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"size:100;not null;uniqueIndex"`
	Website     string `gorm:"size:255;not null"`
	APIEndpoint string `gorm:"size:255"`
	APIKey      string `gorm:"size:200"`

	DefaultCommissionRate decimal.Decimal `gorm:"type:decimal(5,4);default:0.05"`
	CookieDurationDays    int             `gorm:"default:30"`

	IsActive bool `gorm:"default:true"`

	Links []AffiliateLink `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type AffiliateLink struct {
	ID        string           `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string           `gorm:"size:36;not null;uniqueIndex:idx_link_product_partner;index"`
	Product   Product          `gorm:"foreignKey:ProductID"`
	PartnerID string           `gorm:"size:36;not null;uniqueIndex:idx_link_product_partner;index"`
	Partner   AffiliatePartner `gorm:"foreignKey:PartnerID"`

	AffiliateURL string `gorm:"size:500;not null"`
	DeepLink     string `gorm:"size:500"`

	Clicks      int `gorm:"default:0"`
	Conversions int `gorm:"default:0"`

	PartnerPrice decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	IsOnSale     bool             `gorm:"default:false"`
	SalePrice    *decimal.Decimal `gorm:"type:decimal(10,2);null"`

	IsActive    bool `gorm:"default:true"`
	LastChecked time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClickTracking is an immutable record of one outbound click. Rows are only
// ever created or marked converted, never rewritten.
type ClickTracking struct {
	ID              string        `gorm:"size:36;not null;uniqueIndex;primary_key"`
	AffiliateLinkID string        `gorm:"size:36;not null;index"`
	AffiliateLink   AffiliateLink `gorm:"foreignKey:AffiliateLinkID"`
	UserID          *string       `gorm:"size:36;index;null"`

	SessionID string `gorm:"size:100;not null"`
	IPAddress string `gorm:"size:50;not null"`
	UserAgent string `gorm:"type:text"`
	Referrer  string `gorm:"size:500"`

	TrackingID string `gorm:"size:36;not null;uniqueIndex"`
	Converted  bool   `gorm:"default:false"`

	ConversionValue  *decimal.Decimal `gorm:"type:decimal(10,2);null"`
	CommissionEarned *decimal.Decimal `gorm:"type:decimal(10,2);null"`

	ClickedAt   time.Time
	ConvertedAt *time.Time `gorm:"null"`
}

// TrackingCookieName is the cookie carrying the tracking id back to us on
// conversion callbacks.
const TrackingCookieName = "ff_tracking"
