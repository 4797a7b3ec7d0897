package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string   `gorm:"size:200;not null"`
	Slug        string   `gorm:"size:200;not null;uniqueIndex"`
	Description string   `gorm:"type:text"`
	BrandID     string   `gorm:"size:36;index;not null"`
	Brand       Brand    `gorm:"foreignKey:BrandID"`
	CategoryID  string   `gorm:"size:36;index;not null"`
	Category    Category `gorm:"foreignKey:CategoryID"`

	OriginalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CurrentPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	MainImage        string `gorm:"size:255"`
	Material         string `gorm:"size:200"`
	CareInstructions string `gorm:"type:text"`

	MetaTitle       string `gorm:"size:200"`
	MetaDescription string `gorm:"type:text"`

	IsActive bool `gorm:"default:true;index"`

	Variants       []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images         []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews        []Review         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	AffiliateLinks []AffiliateLink  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// IsOnSale reports whether the current price has dropped below the original.
func (p Product) IsOnSale() bool {
	return p.CurrentPrice.LessThan(p.OriginalPrice)
}

type ProductImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string `gorm:"size:36;index;not null"`
	Image     string `gorm:"size:255;not null"`
	AltText   string `gorm:"size:200"`
	SortOrder int    `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	SizeTypeClothing  = "clothing"
	SizeTypeShoe      = "shoe"
	SizeTypeAccessory = "accessory"
)

type ProductVariant struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string `gorm:"size:36;not null;uniqueIndex:idx_variant_product_color_size;index"`
	Color     string `gorm:"size:50;not null;uniqueIndex:idx_variant_product_color_size"`
	ColorCode string `gorm:"size:7"`
	Size      string `gorm:"size:20;not null;uniqueIndex:idx_variant_product_color_size"`
	SizeType  string `gorm:"size:20;not null"`

	StockQuantity int  `gorm:"default:0"`
	IsAvailable   bool `gorm:"default:true"`

	PriceAdjustment decimal.Decimal `gorm:"type:decimal(10,2);default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (v ProductVariant) InStock() bool {
	return v.StockQuantity > 0
}
