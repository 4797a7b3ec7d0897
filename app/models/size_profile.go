package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SizeProfile holds a user's clothing and shoe sizes plus optional body
// measurements. At most one profile exists per user.
type SizeProfile struct {
	ID     string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID string `gorm:"size:36;not null;uniqueIndex"`

	ShirtSize string `gorm:"size:10"`
	PantSize  string `gorm:"size:10"`
	DressSize string `gorm:"size:10"`

	ShoeSizeUS *decimal.Decimal `gorm:"type:decimal(4,1);null"`
	ShoeSizeEU *int             `gorm:"null"`
	ShoeSizeUK *decimal.Decimal `gorm:"type:decimal(4,1);null"`

	HeightCm *int             `gorm:"null"`
	WeightKg *decimal.Decimal `gorm:"type:decimal(5,1);null"`
	ChestCm  *int             `gorm:"null"`
	WaistCm  *int             `gorm:"null"`
	HipCm    *int             `gorm:"null"`

	PreferredFit string `gorm:"size:20;default:'regular'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	FitSlim      = "slim"
	FitRegular   = "regular"
	FitLoose     = "loose"
	FitOversized = "oversized"
)

var ShirtSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// ClothingSizes returns the non-empty clothing size labels on the profile.
func (p *SizeProfile) ClothingSizes() []string {
	var sizes []string
	for _, s := range []string{p.ShirtSize, p.PantSize, p.DressSize} {
		if s != "" {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

// ShoeSizes returns the profile's US shoe size as a variant size label.
func (p *SizeProfile) ShoeSizes() []string {
	if p.ShoeSizeUS == nil {
		return nil
	}
	return []string{p.ShoeSizeUS.String()}
}

// SizesByType groups the profile's sizes per variant size type, so that a
// shirt size never matches a shoe variant and vice versa.
func (p *SizeProfile) SizesByType() map[string][]string {
	byType := make(map[string][]string)
	if clothing := p.ClothingSizes(); len(clothing) > 0 {
		byType[SizeTypeClothing] = clothing
	}
	if shoes := p.ShoeSizes(); len(shoes) > 0 {
		byType[SizeTypeShoe] = shoes
	}
	return byType
}

func (p *SizeProfile) HasSizes() bool {
	return len(p.SizesByType()) > 0
}
