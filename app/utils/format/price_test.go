package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	price := decimal.NewFromFloat(1299.5)

	assert.Equal(t, "$1,299.50", FormatPrice(price))
	assert.Equal(t, "$1,299.50", FormatPrice(&price))
	assert.Equal(t, "$49.90", FormatPrice(49.9))
	assert.Equal(t, "$40.00", FormatPrice(40))
	assert.Equal(t, "$40.00", FormatPrice("40"))
}

func TestFormatPriceFallsBackToZero(t *testing.T) {
	assert.Equal(t, "$0.00", FormatPrice(nil))
	assert.Equal(t, "$0.00", FormatPrice((*decimal.Decimal)(nil)))
	assert.Equal(t, "$0.00", FormatPrice("not-a-number"))
}
