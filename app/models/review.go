package models

import (
	"time"

	"gorm.io/gorm"
)

// Fit ratings run from 1 (ran very small) to 5 (ran very large), 3 meaning
// true to size.
const (
	FitRatingVerySmall  = 1
	FitRatingSmall      = 2
	FitRatingTrueToSize = 3
	FitRatingLarge      = 4
	FitRatingVeryLarge  = 5
)

type Review struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string  `gorm:"size:36;not null;uniqueIndex:idx_review_product_user;index"`
	Product   Product `gorm:"foreignKey:ProductID"`
	UserID    string  `gorm:"size:36;not null;uniqueIndex:idx_review_product_user;index"`
	User      User    `gorm:"foreignKey:UserID"`

	Rating        int    `gorm:"not null"`
	Title         string `gorm:"size:255;not null"`
	Content       string `gorm:"type:text"`
	SizePurchased string `gorm:"size:20"`
	FitRating     int    `gorm:"not null"`

	IsApproved     bool `gorm:"default:false;index"`
	HelpfulVotes   int  `gorm:"default:0"`
	UnhelpfulVotes int  `gorm:"default:0"`

	Images []ReviewImage `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

type ReviewImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ReviewID  string `gorm:"size:36;not null;index"`
	Image     string `gorm:"size:255;not null"`
	CreatedAt time.Time
}
