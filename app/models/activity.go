package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ActivityView     = "view"
	ActivityLike     = "like"
	ActivityClick    = "click"
	ActivityPurchase = "purchase"
	ActivityReview   = "review"
)

// UserActivity is an append-only event log. Rows are created on user actions
// and never updated or deleted.
type UserActivity struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string  `gorm:"size:36;not null;index"`
	ProductID string  `gorm:"size:36;not null;index"`
	Product   Product `gorm:"foreignKey:ProductID"`

	ActivityType string `gorm:"size:20;not null;index"`
	SessionID    string `gorm:"size:100"`
	Source       string `gorm:"size:50"`

	Timestamp time.Time `gorm:"autoCreateTime"`
}

type Wishlist struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string  `gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product;index"`
	ProductID string  `gorm:"size:36;not null;uniqueIndex:idx_wishlist_user_product;index"`
	Product   Product `gorm:"foreignKey:ProductID"`

	PreferredSize  string `gorm:"size:20"`
	PreferredColor string `gorm:"size:50"`

	NotifyPriceDrop   bool `gorm:"default:true"`
	NotifyBackInStock bool `gorm:"default:true"`

	CreatedAt time.Time
}

// UserPreference stores style and price preferences, one row per user.
// Color and fit lists are comma-separated text.
type UserPreference struct {
	ID     string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID string `gorm:"size:36;not null;uniqueIndex"`

	PreferredColors   string `gorm:"type:text"`
	PreferredFitTypes string `gorm:"type:text"`

	MinPrice *decimal.Decimal `gorm:"type:decimal(10,2);null"`
	MaxPrice *decimal.Decimal `gorm:"type:decimal(10,2);null"`

	UpdatedAt time.Time
}
