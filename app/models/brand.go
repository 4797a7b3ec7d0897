package models

import (
	"time"

	"gorm.io/gorm"
)

type Brand struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name         string    `gorm:"size:100;not null"`
	Slug         string    `gorm:"size:100;not null;uniqueIndex"`
	Logo         string    `gorm:"size:255"`
	Website      string    `gorm:"size:255"`
	SizeGuideURL string    `gorm:"size:255"`
	Products     []Product `gorm:"foreignKey:BrandID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
