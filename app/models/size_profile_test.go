package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSizesByTypeGroupsByVariantType(t *testing.T) {
	shoe := decimal.NewFromFloat(9.5)
	profile := SizeProfile{
		ShirtSize:  "M",
		PantSize:   "32",
		ShoeSizeUS: &shoe,
	}

	byType := profile.SizesByType()
	assert.Equal(t, []string{"M", "32"}, byType[SizeTypeClothing])
	assert.Equal(t, []string{"9.5"}, byType[SizeTypeShoe])
	assert.True(t, profile.HasSizes())
}

func TestSizesByTypeEmptyProfile(t *testing.T) {
	profile := SizeProfile{}

	assert.Empty(t, profile.SizesByType())
	assert.False(t, profile.HasSizes())
}
